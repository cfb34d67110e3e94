package ranking

import (
	"sort"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const DurationWeight = 0.2

// BestScore blends price and duration; lower is better.
func BestScore(b models.Bundle) float64 {
	return b.DisplayTotal + b.DurationOrMax()*DurationWeight
}

func flexibility(b models.Bundle) int {
	if b.Refundable() {
		return 0
	}
	return 1
}

// Sort orders bundles in place. Unknown keys sort as "best". Ties keep input order.
func Sort(bundles []models.Bundle, key models.SortKey) []models.Bundle {
	switch key {
	case models.SortCheapest:
		sort.SliceStable(bundles, func(i, j int) bool {
			return bundles[i].DisplayTotal < bundles[j].DisplayTotal
		})

	case models.SortFastest:
		sort.SliceStable(bundles, func(i, j int) bool {
			return bundles[i].DurationOrMax() < bundles[j].DurationOrMax()
		})

	case models.SortFlexible:
		sort.SliceStable(bundles, func(i, j int) bool {
			fi, fj := flexibility(bundles[i]), flexibility(bundles[j])
			if fi != fj {
				return fi < fj
			}
			return bundles[i].DisplayTotal < bundles[j].DisplayTotal
		})

	default:
		sort.SliceStable(bundles, func(i, j int) bool {
			return BestScore(bundles[i]) < BestScore(bundles[j])
		})
	}

	return bundles
}
