package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/favorites"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
)

type FavoritesHandler struct {
	store favorites.Store
	log   *logger.Logger
}

func NewFavoritesHandler(store favorites.Store, log *logger.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		store: store,
		log:   log,
	}
}

func (h *FavoritesHandler) List(c echo.Context) error {
	items, err := h.store.List(c.Request().Context())
	if err != nil {
		h.log.UpstreamError("favorites", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load favorites."})
	}
	return c.JSON(http.StatusOK, models.FavoritesResponse{Items: items})
}

func (h *FavoritesHandler) Add(c echo.Context) error {
	var req models.FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidBody})
	}

	item, err := h.store.Add(c.Request().Context(), req.Payload)
	if err != nil {
		if errors.Is(err, favorites.ErrEmptyPayload) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Payload is required."})
		}
		h.log.UpstreamError("favorites", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save favorite."})
	}
	return c.JSON(http.StatusOK, models.FavoriteResponse{Item: item})
}

func (h *FavoritesHandler) Remove(c echo.Context) error {
	removed, err := h.store.Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		h.log.UpstreamError("favorites", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to remove favorite."})
	}
	return c.JSON(http.StatusOK, models.OKResponse{OK: removed})
}
