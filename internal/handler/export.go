package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/triptrio/internal/export"
	"github.com/dharmasatrya/triptrio/internal/logger"
	"github.com/dharmasatrya/triptrio/internal/models"
)

type ExportHandler struct {
	log *logger.Logger
}

func NewExportHandler(log *logger.Logger) *ExportHandler {
	return &ExportHandler{log: log}
}

func (h *ExportHandler) PDF(c echo.Context) error {
	var req export.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidBody})
	}

	doc, err := export.ResultsPDF(req)
	if err != nil {
		h.log.Error("pdf_export_failed", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate PDF."})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", doc)
}
