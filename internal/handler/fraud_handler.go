package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/service"
)

// FraudHandler handles fraud analysis and alert endpoints.
type FraudHandler struct {
	fraudService service.FraudService
}

// NewFraudHandler creates a new fraud handler.
func NewFraudHandler(fraudService service.FraudService) *FraudHandler {
	return &FraudHandler{fraudService: fraudService}
}

// AnalyzeResponse summarizes an analysis run.
type AnalyzeResponse struct {
	AlertsRaised int                `json:"alerts_raised"`
	Alerts       []model.FraudAlert `json:"alerts,omitempty"`
}

// AnalyzeCard godoc
// @Summary Run fraud analysis over one card's operation history
// @Tags fraud
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} AnalyzeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fraud/cards/{id}/analyze [post]
func (h *FraudHandler) AnalyzeCard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	alerts, err := h.fraudService.AnalyzeCard(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, AnalyzeResponse{
		AlertsRaised: len(alerts),
		Alerts:       alerts,
	})
}

// AnalyzeAll godoc
// @Summary Run fraud analysis over every stored card
// @Tags fraud
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AnalyzeResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /fraud/analyze [post]
func (h *FraudHandler) AnalyzeAll(c echo.Context) error {
	raised, err := h.fraudService.AnalyzeAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, AnalyzeResponse{AlertsRaised: raised})
}

// ListAlerts godoc
// @Summary List fraud alerts, optionally filtered by card or severity
// @Tags fraud
// @Produce json
// @Security BearerAuth
// @Param card_id query int false "Card id"
// @Param severity query string false "Alert severity"
// @Success 200 {array} model.FraudAlert
// @Failure 400 {object} errors.ErrorResponse
// @Router /fraud/alerts [get]
func (h *FraudHandler) ListAlerts(c echo.Context) error {
	ctx := c.Request().Context()

	if cardIDStr := c.QueryParam("card_id"); cardIDStr != "" {
		cardID, err := strconv.ParseUint(cardIDStr, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid card_id",
				Code:  "INVALID_ID",
			})
		}
		alerts, err := h.fraudService.ListByCard(ctx, uint(cardID))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, alerts)
	}

	if severity := c.QueryParam("severity"); severity != "" {
		alerts, err := h.fraudService.ListBySeverity(ctx, model.AlertSeverity(severity))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, alerts)
	}

	alerts, err := h.fraudService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, alerts)
}
