package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cardguard/internal/errors"
	"cardguard/internal/service"
)

// ReportHandler handles reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TopCards godoc
// @Summary Most used cards by operation count
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries (default 5)"
// @Success 200 {array} service.CardUsage
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/top-cards [get]
func (h *ReportHandler) TopCards(c echo.Context) error {
	limit := 5
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}
	usages, err := h.reportService.TopUsedCards(c.Request().Context(), limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, usages)
}

// OperationsByType godoc
// @Summary Operation count and total amount per type
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.OperationTypeStats
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/operations-by-type [get]
func (h *ReportHandler) OperationsByType(c echo.Context) error {
	stats, err := h.reportService.StatsByOperationType(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, stats)
}

// InactiveCards godoc
// @Summary Blocked and suspended cards
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.InactiveCards
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports/inactive-cards [get]
func (h *ReportHandler) InactiveCards(c echo.Context) error {
	cards, err := h.reportService.ListInactiveCards(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}
