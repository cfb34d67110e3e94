package airports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/providers"
	"github.com/dharmasatrya/triptrio/internal/ratelimit"
)

// Source loads the whole airport dataset.
type Source interface {
	Fetch(ctx context.Context) (map[string]models.AirportRecord, error)
}

// HTTPSource downloads the dataset from a static JSON URL keyed by ICAO code.
type HTTPSource struct {
	url     string
	client  *http.Client
	limiter *ratelimit.UpstreamLimiter
}

func NewHTTPSource(url string, limiter *ratelimit.UpstreamLimiter) *HTTPSource {
	return &HTTPSource{
		url:     url,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: limiter,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context) (map[string]models.AirportRecord, error) {
	if err := s.limiter.Wait(ctx, ratelimit.UpstreamAirports); err != nil {
		return nil, providers.NewProviderError(ratelimit.UpstreamAirports, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, providers.NewProviderError(ratelimit.UpstreamAirports, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, providers.NewProviderError(ratelimit.UpstreamAirports, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providers.NewProviderError(ratelimit.UpstreamAirports,
			fmt.Errorf("Failed to load airports dataset: status %d", resp.StatusCode))
	}

	var data map[string]models.AirportRecord
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, providers.NewProviderError(ratelimit.UpstreamAirports,
			fmt.Errorf("decode airports dataset: %w", err))
	}
	return data, nil
}
