package builder

import (
	"unicode/utf16"

	"github.com/dharmasatrya/triptrio/internal/deeplinks"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/timeutil"
)

const (
	seedStart   = 7
	seedModulus = 9973
)

// BasePrice derives a stable pseudo-random price in [120, 279] from the route and date.
func BasePrice(origin, destination, date string) int {
	a := seedStart
	for _, c := range utf16.Encode([]rune(origin + destination + date)) {
		a = (a*33 + int(c)) % seedModulus
	}
	return 120 + a%160
}

type leg struct {
	from, to       string
	depart, arrive string
	minutes        int
}

func segments(date string, legs ...leg) []models.Segment {
	out := make([]models.Segment, len(legs))
	for i, l := range legs {
		out[i] = models.Segment{
			From:            l.from,
			To:              l.to,
			DepartTime:      timeutil.LocalDateTime(date, l.depart),
			ArriveTime:      timeutil.LocalDateTime(date, l.arrive),
			DurationMinutes: l.minutes,
		}
	}
	return out
}

func totalMinutes(groups ...[]models.Segment) int {
	total := 0
	for _, segs := range groups {
		for _, s := range segs {
			total += s.DurationMinutes
		}
	}
	return total
}

type itineraries struct {
	directOut, oneStopOut, twoStopOut []models.Segment
	directIn, oneStopIn               []models.Segment
}

func buildItineraries(req *models.SearchRequest) itineraries {
	o, d, dep := req.Origin, req.Destination, req.DepartDate

	it := itineraries{
		directOut: segments(dep,
			leg{o, d, "08:10", "10:55", 165},
		),
		oneStopOut: segments(dep,
			leg{o, "CLT", "06:00", "07:45", 105},
			leg{"CLT", d, "08:50", "10:35", 105},
		),
		twoStopOut: segments(dep,
			leg{o, "ORD", "05:40", "07:20", 100},
			leg{"ORD", "PHX", "08:20", "10:05", 105},
			leg{"PHX", d, "11:10", "13:05", 115},
		),
	}

	if req.RoundTrip {
		ret := req.Return()
		it.directIn = segments(ret,
			leg{d, o, "17:40", "20:20", 160},
		)
		it.oneStopIn = segments(ret,
			leg{d, "CLT", "18:15", "19:55", 100},
			leg{"CLT", o, "21:00", "22:45", 105},
		)
	}
	return it
}

type offer struct {
	id         string
	carrier    string
	stops      int
	refundable bool
	greener    bool
	markup     int
	out, in    []models.Segment
}

// Candidates synthesizes the three flight options for a validated request,
// each paired with a hotel when one was asked for.
func Candidates(req *models.SearchRequest) []models.Bundle {
	bp := BasePrice(req.Origin, req.Destination, req.DepartDate)
	it := buildItineraries(req)

	offers := []offer{
		{id: "CAND-1", carrier: "United", stops: 0, refundable: true, greener: true, markup: 60, out: it.directOut, in: it.directIn},
		{id: "CAND-2", carrier: "American", stops: 1, markup: -30, out: it.oneStopOut, in: it.oneStopIn},
		{id: "CAND-3", carrier: "Delta", stops: 2, refundable: true, markup: 10, out: it.twoStopOut, in: it.oneStopIn},
	}

	bundles := make([]models.Bundle, len(offers))
	for i, o := range offers {
		duration := totalMinutes(o.out, o.in)
		flight := &models.Flight{
			CarrierName:     o.carrier,
			Cabin:           req.Cabin,
			Stops:           o.stops,
			Refundable:      o.refundable,
			Greener:         o.greener,
			PriceUSD:        float64(bp + o.markup),
			SegmentsOut:     o.out,
			SegmentsIn:      o.in,
			DurationMinutes: &duration,
		}

		b := models.Bundle{
			ID:       o.id,
			Currency: req.Currency,
			Flight:   flight,
		}
		if req.IncludeHotel {
			b.Hotel = buildHotel(req, bp, i)
		}
		attachLinks(&b, req)
		bundles[i] = b
	}
	return bundles
}

func adults(req *models.SearchRequest) int {
	if req.PassengersAdults > 0 {
		return req.PassengersAdults
	}
	if req.Passengers > 0 {
		return req.Passengers
	}
	return 1
}

func attachLinks(b *models.Bundle, req *models.SearchRequest) {
	carrier := b.Flight.CarrierName
	if carrier == "" {
		return
	}

	ret := ""
	if req.RoundTrip {
		ret = req.Return()
	}

	links := models.FlightLinks{
		Airline: &models.Link{
			Name: carrier,
			URL:  deeplinks.AirlineURL(carrier, req.Origin, req.Destination, req.DepartDate, req.RoundTrip, req.Return()),
		},
		Skyscanner: deeplinks.SkyscannerFlight(req.Origin, req.Destination, req.DepartDate, ret, adults(req), req.Cabin),
	}
	b.Deeplinks = links
	b.Flight.Deeplinks = links
}
