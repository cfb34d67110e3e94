package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/builder"
	"github.com/dharmasatrya/triptrio/internal/cache"
	"github.com/dharmasatrya/triptrio/internal/filter"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
	"github.com/dharmasatrya/triptrio/internal/pricing"
	"github.com/dharmasatrya/triptrio/internal/ranking"
)

const msgInvalidBody = "Invalid request body."

type SearchHandler struct {
	cache cache.Cache
	log   *logger.Logger
}

func NewSearchHandler(c cache.Cache, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		cache: c,
		log:   log,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidBody})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}

	candidates, found := h.cache.Get(ctx, &req)
	if !found {
		candidates = builder.Candidates(&req)
		if err := h.cache.Set(ctx, &req, candidates); err != nil {
			h.log.UpstreamError("redis", err)
		}
	}

	pricing.ApplyTotals(candidates, &req)
	results := filter.Apply(candidates, &req)
	ranking.Sort(results, req.Sort)

	return c.JSON(http.StatusOK, models.SearchResponse{
		Results:      results,
		HotelWarning: pricing.HotelWarning(&req),
		SortBasis:    req.Basis(),
	})
}
