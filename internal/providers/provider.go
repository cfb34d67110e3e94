package providers

import (
	"context"
	"fmt"

	"github.com/dharmasatrya/triptrio/internal/models"
)

// PlaceProvider suggests airports and cities for a free-text query.
type PlaceProvider interface {
	Name() string
	Suggest(ctx context.Context, query string) ([]models.Place, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}

// StatusError is returned when an upstream answered with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.Status)
}
