package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
)

const msgInternal = "Something went wrong."

// ErrorHandler renders every unhandled error as {"error": "..."}. Messages of
// non-HTTP errors are logged but not echoed to the client.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := msgInternal

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
		}

		req := c.Request()
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		log.HTTPError(requestID, req.Method, req.RequestURI, status, err)

		if req.Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, models.ErrorResponse{Error: msg})
	}
}
