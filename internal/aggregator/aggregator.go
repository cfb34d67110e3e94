package aggregator

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/providers"
)

const (
	SourceEmpty       = "empty"
	SourceSeed        = providers.SeedProviderName
	SourceDuffel      = "duffel"
	SourceDuffelError = "duffel-error"

	MinQueryLength = 2
)

// SuggestionSource is a live place provider that can describe the request it sends.
type SuggestionSource interface {
	providers.PlaceProvider
	Version() string
	SuggestionsURL(q string) string
}

type Config struct {
	Timeout time.Duration
}

// Aggregator answers place queries from the live provider when one is
// configured and from the fallback list otherwise. It never fails.
type Aggregator struct {
	live     SuggestionSource
	fallback providers.PlaceProvider
	config   Config
	log      *logger.Logger
}

// NewAggregator builds an aggregator; live may be nil when no API key is configured.
func NewAggregator(live SuggestionSource, fallback providers.PlaceProvider, config Config, log *logger.Logger) *Aggregator {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	return &Aggregator{
		live:     live,
		fallback: fallback,
		config:   config,
		log:      log,
	}
}

func (a *Aggregator) Search(ctx context.Context, query string) models.PlacesResponse {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return models.PlacesResponse{OK: true, Source: SourceEmpty, Data: []models.Place{}}
	}

	if a.live == nil {
		return models.PlacesResponse{OK: true, Source: SourceSeed, Data: a.seeded(ctx, q)}
	}

	searchCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	sentURL := a.live.SuggestionsURL(q)
	places, err := a.live.Suggest(searchCtx, q)
	if err != nil {
		var statusErr *providers.StatusError
		if errors.As(err, &statusErr) {
			a.log.UpstreamError(a.live.Name(), err)
			return models.PlacesResponse{
				OK:     true,
				Source: SourceDuffelError,
				Status: statusErr.Status,
				Meta:   &models.PlacesMeta{SentVersion: a.live.Version(), SentURL: sentURL},
				Error:  statusErr.Body,
				Data:   []models.Place{},
			}
		}

		a.log.UpstreamError(a.live.Name(), err)
		return models.PlacesResponse{
			OK:     true,
			Source: SourceSeed,
			Meta:   &models.PlacesMeta{Error: errorMessage(err)},
			Data:   a.seeded(ctx, q),
		}
	}

	count := len(places)
	return models.PlacesResponse{
		OK:     true,
		Source: SourceDuffel,
		Meta:   &models.PlacesMeta{SentVersion: a.live.Version(), SentURL: sentURL, Count: &count},
		Data:   places,
	}
}

func (a *Aggregator) seeded(ctx context.Context, q string) []models.Place {
	places, err := a.fallback.Suggest(ctx, q)
	if err != nil || places == nil {
		return []models.Place{}
	}
	return places
}

// errorMessage drops the provider prefix so clients see the transport error itself.
func errorMessage(err error) string {
	var providerErr *providers.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Err.Error()
	}
	return err.Error()
}
