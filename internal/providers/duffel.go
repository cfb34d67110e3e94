package providers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/ratelimit"
)

type duffelResponse struct {
	Data []duffelPlace `json:"data"`
}

// looseString decodes JSON strings and silently ignores any other JSON type;
// Duffel returns "city" as an object for airport suggestions.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err == nil {
		*s = looseString(v)
	}
	return nil
}

type duffelPlace struct {
	IATACode        looseString `json:"iata_code"`
	Code            looseString `json:"code"`
	Name            looseString `json:"name"`
	CityName        looseString `json:"city_name"`
	City            looseString `json:"city"`
	IATACountryCode looseString `json:"iata_country_code"`
	CountryCode     looseString `json:"country_code"`
	Country         looseString `json:"country"`
}

type DuffelConfig struct {
	BaseURL string
	APIKey  string
	Version string
}

type DuffelProvider struct {
	cfg     DuffelConfig
	client  *http.Client
	limiter *ratelimit.UpstreamLimiter
}

func NewDuffelProvider(cfg DuffelConfig, limiter *ratelimit.UpstreamLimiter) *DuffelProvider {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &DuffelProvider{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: limiter,
	}
}

func (p *DuffelProvider) Name() string {
	return ratelimit.UpstreamDuffel
}

func (p *DuffelProvider) Version() string {
	return p.cfg.Version
}

// SuggestionsURL is the exact URL queried for q.
func (p *DuffelProvider) SuggestionsURL(q string) string {
	return p.cfg.BaseURL + "/places/suggestions?" + url.Values{"query": {q}}.Encode()
}

// Suggest queries Duffel place suggestions. A non-2xx answer is reported as
// *StatusError carrying the raw body; transport failures as *ProviderError.
func (p *DuffelProvider) Suggest(ctx context.Context, q string) ([]models.Place, error) {
	if err := p.limiter.Wait(ctx, p.Name()); err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.SuggestionsURL(q), nil)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Duffel-Version", p.cfg.Version)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	var payload duffelResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		payload = duffelResponse{}
	}
	return normalizePlaces(payload.Data), nil
}

func firstNonEmpty(values ...looseString) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}

func normalizePlaces(items []duffelPlace) []models.Place {
	places := make([]models.Place, 0, len(items))
	for _, item := range items {
		code := firstNonEmpty(item.IATACode, item.Code)
		if code == "" || item.Name == "" {
			continue
		}
		place := models.Place{
			Code:    code,
			Name:    string(item.Name),
			City:    firstNonEmpty(item.CityName, item.City),
			Country: firstNonEmpty(item.IATACountryCode, item.CountryCode, item.Country),
		}
		place.Label = PlaceLabel(place)
		places = append(places, place)
	}
	return places
}

// PlaceLabel renders "CODE — Name — City — Country", skipping empty parts.
func PlaceLabel(p models.Place) string {
	parts := []string{p.Code, p.Name}
	if p.City != "" {
		parts = append(parts, p.City)
	}
	if p.Country != "" {
		parts = append(parts, p.Country)
	}
	return strings.Join(parts, " — ")
}
