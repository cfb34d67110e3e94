package pricing

import (
	"math"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const DefaultNightsWarning = "Using 1 night by default for hotel pricing."

// ApplyTotals fills the derived totals of every bundle in place. A hotel below
// the requested star minimum stays attached but is flagged and priced at 0.
// Applying it twice yields the same totals.
func ApplyTotals(bundles []models.Bundle, req *models.SearchRequest) {
	basis := req.Basis()

	for i := range bundles {
		b := &bundles[i]

		b.FlightTotal = 0
		if b.Flight != nil {
			b.FlightTotal = b.Flight.PriceUSD
		}

		b.HotelTotal = 0
		if req.IncludeHotel && b.Hotel != nil {
			if req.MinHotelStar == nil || b.Hotel.Star >= *req.MinHotelStar {
				b.HotelTotal = b.Hotel.PriceConverted
			} else {
				b.Hotel.FilteredOutByStar = true
			}
		}

		b.TotalCost = math.Round(b.FlightTotal + b.HotelTotal)
		if basis == models.SortBasisBundle {
			b.DisplayTotal = b.TotalCost
		} else {
			b.DisplayTotal = b.FlightTotal
		}
	}
}

// HotelWarning is set when hotel pricing silently assumed a single night.
func HotelWarning(req *models.SearchRequest) *string {
	if req.IncludeHotel && (req.Nights == nil || *req.Nights == 0) {
		w := DefaultNightsWarning
		return &w
	}
	return nil
}
