package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/config"
	"github.com/dharmasatrya/triptrio/internal/models"
)

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

type PingHandler struct {
	cfg config.Config
	now func() time.Time
}

func NewPingHandler(cfg config.Config) *PingHandler {
	return &PingHandler{cfg: cfg, now: time.Now}
}

// Ping reports which optional integrations are configured, never their secrets.
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, models.PingResponse{
		OK:             true,
		Router:         "echo",
		HasDuffelKey:   h.cfg.LiveSuggestions(),
		DuffelVersion:  h.cfg.DuffelVersion,
		AuthConfigured: h.cfg.AuthConfigured(),
		Now:            h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
