package filter

import (
	"github.com/dharmasatrya/triptrio/internal/models"
)

// Apply keeps the bundles that pass every requested filter, preserving order.
// Budget bounds compare total_cost, never display_total.
func Apply(bundles []models.Bundle, req *models.SearchRequest) []models.Bundle {
	result := make([]models.Bundle, 0, len(bundles))

	for _, b := range bundles {
		if matchesFilters(b, req) {
			result = append(result, b)
		}
	}

	return result
}

func matchesFilters(b models.Bundle, req *models.SearchRequest) bool {
	if req.Refundable && !b.Refundable() {
		return false
	}
	if req.Greener && !b.Greener() {
		return false
	}

	if req.MaxStops != nil && b.Stops() > *req.MaxStops {
		return false
	}

	if req.MinBudget != nil && b.TotalCost < *req.MinBudget {
		return false
	}
	if req.MaxBudget != nil && b.TotalCost > *req.MaxBudget {
		return false
	}

	return true
}
