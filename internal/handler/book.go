package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/booking"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
)

type wrappedOffer struct {
	Offer *models.Offer `json:"offer"`
}

// decodeOffer accepts both {"offer": {...}} and a bare offer. Anything
// unreadable is treated as an empty offer.
func decodeOffer(body []byte) models.Offer {
	var wrapped wrappedOffer
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Offer != nil {
		return *wrapped.Offer
	}

	var bare models.Offer
	if err := json.Unmarshal(body, &bare); err != nil {
		return models.Offer{}
	}
	return bare
}

type BookHandler struct {
	baseOverride string
	now          func() time.Time
	log          *logger.Logger
}

func NewBookHandler(baseOverride string, log *logger.Logger) *BookHandler {
	return &BookHandler{
		baseOverride: baseOverride,
		now:          time.Now,
		log:          log,
	}
}

func (h *BookHandler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		body = nil
	}
	return h.respond(c, decodeOffer(body))
}

// FromQuery handles GET for hosts that block POST.
func (h *BookHandler) FromQuery(c echo.Context) error {
	return h.respond(c, booking.FromQuery(c.QueryParams()))
}

func (h *BookHandler) respond(c echo.Context, offer models.Offer) error {
	base := booking.ResolveBase(h.baseOverride, c.Scheme(), c.Request().Host)

	bookingURL, err := booking.ComposeURL(base, booking.Normalize(offer), h.now())
	if err != nil {
		h.log.Error("booking_url_failed", "base", base, "error", err.Error())
		return c.JSON(http.StatusInternalServerError, models.BookingResponse{OK: false, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, models.BookingResponse{OK: true, BookingURL: bookingURL})
}
