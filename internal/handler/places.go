package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/aggregator"
)

type PlacesHandler struct {
	aggregator *aggregator.Aggregator
}

func NewPlacesHandler(agg *aggregator.Aggregator) *PlacesHandler {
	return &PlacesHandler{aggregator: agg}
}

// Search always answers 200; upstream trouble is reported in the body.
func (h *PlacesHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		q = c.QueryParam("name")
	}

	return c.JSON(http.StatusOK, h.aggregator.Search(c.Request().Context(), q))
}
