package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/airports"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/providers"
)

// AirportSource is satisfied by *airports.ReferenceCache.
type AirportSource interface {
	Get(ctx context.Context) (airports.Snapshot, error)
}

type AirportsHandler struct {
	source AirportSource
	log    *logger.Logger
}

func NewAirportsHandler(source AirportSource, log *logger.Logger) *AirportsHandler {
	return &AirportsHandler{
		source: source,
		log:    log,
	}
}

func (h *AirportsHandler) Search(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"))

	snap, err := h.source.Get(c.Request().Context())
	if err != nil {
		h.log.UpstreamError("airports-dataset", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: upstreamMessage(err)})
	}

	return c.JSON(http.StatusOK, models.AirportsResponse{
		Results: airports.Match(snap.Airports, c.QueryParam("q"), limit),
		Stale:   snap.Stale,
	})
}

// parseLimit treats anything that is not a number of at least 1 as the default.
func parseLimit(raw string) int {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || n < 1 {
		return airports.DefaultLimit
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func upstreamMessage(err error) string {
	var providerErr *providers.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Err.Error()
	}
	return err.Error()
}
