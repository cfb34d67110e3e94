package providers

import (
	"context"
	"strings"

	"github.com/dharmasatrya/triptrio/internal/models"
)

const SeedProviderName = "local-seed"

var seedPlaces = []models.Place{
	{Code: "BOS", Name: "Logan International Airport", City: "Boston", Country: "US", Label: "BOS — Logan International Airport — Boston — US"},
	{Code: "AUS", Name: "Austin–Bergstrom International Airport", City: "Austin", Country: "US", Label: "AUS — Austin–Bergstrom International — Austin — US"},
	{Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "US", Label: "MIA — Miami International Airport — Miami — US"},
}

// SeedProvider answers from a small built-in list when Duffel is not available.
type SeedProvider struct {
	places []models.Place
}

func NewSeedProvider() *SeedProvider {
	return &SeedProvider{places: seedPlaces}
}

func (p *SeedProvider) Name() string {
	return SeedProviderName
}

func (p *SeedProvider) Suggest(_ context.Context, q string) ([]models.Place, error) {
	needle := strings.ToLower(q)

	results := make([]models.Place, 0, len(p.places))
	for _, place := range p.places {
		if strings.Contains(strings.ToLower(place.Code), needle) ||
			strings.Contains(strings.ToLower(place.Name), needle) ||
			strings.Contains(strings.ToLower(place.City), needle) {
			results = append(results, place)
		}
	}
	return results, nil
}
