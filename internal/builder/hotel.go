package builder

import (
	"math"

	"github.com/dharmasatrya/triptrio/internal/deeplinks"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/timeutil"
)

const defaultHotelStar = 4

var hotelNames = []string{"Downtown Inn", "Airport Suites", "Central Plaza"}

// OfferedStar is the star rating synthesized for a requested minimum: the
// minimum itself (4 when unset) clamped to [3, 5].
func OfferedStar(minStar float64) float64 {
	target := minStar
	if target == 0 {
		target = defaultHotelStar
	}
	return math.Max(3, math.Min(5, target))
}

func buildHotel(req *models.SearchRequest, bp, index int) *models.Hotel {
	nights := req.NightsOrDefault()

	var starTarget float64
	if req.MinHotelStar != nil {
		starTarget = *req.MinHotelStar
	}
	star := OfferedStar(starTarget)
	perNight := 95 + bp%60

	checkIn, checkOut := stayDates(req, nights)

	return &models.Hotel{
		Name:           hotelNames[index%len(hotelNames)],
		Star:           star,
		City:           req.Destination,
		PriceConverted: float64(perNight * nights),
		Currency:       req.Currency,
		Deeplinks: models.HotelLinks{
			Booking: deeplinks.BookingHotel(req.Destination, checkIn, checkOut, adults(req), starTarget),
		},
		FilteredOutByStar: star < starTarget,
	}
}

// stayDates prefers explicit hotel dates and otherwise derives them from the flight dates.
func stayDates(req *models.SearchRequest, nights int) (string, string) {
	checkIn := req.DepartDate
	if req.HotelCheckIn != nil && *req.HotelCheckIn != "" {
		checkIn = *req.HotelCheckIn
	}

	if req.HotelCheckOut != nil && *req.HotelCheckOut != "" {
		return checkIn, *req.HotelCheckOut
	}
	if req.RoundTrip && req.Return() != "" {
		return checkIn, req.Return()
	}
	if t, err := timeutil.ParseDate(checkIn); err == nil {
		return checkIn, t.AddDate(0, 0, nights).Format(timeutil.DateLayout)
	}
	return checkIn, ""
}
