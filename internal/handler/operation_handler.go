package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/service"
)

// OperationHandler handles operation endpoints.
type OperationHandler struct {
	operationService service.OperationService
}

// NewOperationHandler creates a new operation handler.
func NewOperationHandler(operationService service.OperationService) *OperationHandler {
	return &OperationHandler{operationService: operationService}
}

// RecordOperationRequest represents an operation recording request.
type RecordOperationRequest struct {
	CardID   uint   `json:"card_id" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=PURCHASE WITHDRAWAL ONLINE_PAYMENT"`
	Location string `json:"location" validate:"required"`
}

// RecordOperation godoc
// @Summary Record a financial operation against a card
// @Tags operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RecordOperationRequest true "Operation data"
// @Success 201 {object} model.Operation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /operations [post]
func (h *OperationHandler) RecordOperation(c echo.Context) error {
	var req RecordOperationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid amount",
			Code:  "INVALID_AMOUNT",
		})
	}

	op, err := h.operationService.Record(c.Request().Context(), req.CardID, amount, model.OperationType(req.Type), req.Location)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, op)
}

// ListOperations godoc
// @Summary List operations, optionally filtered by card or type
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param card_id query int false "Card id"
// @Param type query string false "Operation type"
// @Success 200 {array} model.Operation
// @Failure 400 {object} errors.ErrorResponse
// @Router /operations [get]
func (h *OperationHandler) ListOperations(c echo.Context) error {
	ctx := c.Request().Context()

	if cardIDStr := c.QueryParam("card_id"); cardIDStr != "" {
		cardID, err := strconv.ParseUint(cardIDStr, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid card_id",
				Code:  "INVALID_ID",
			})
		}
		ops, err := h.operationService.ListByCard(ctx, uint(cardID))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, ops)
	}

	if opType := c.QueryParam("type"); opType != "" {
		ops, err := h.operationService.ListByType(ctx, model.OperationType(opType))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, ops)
	}

	ops, err := h.operationService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ops)
}

// DeleteOperation godoc
// @Summary Delete an operation
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /operations/{id} [delete]
func (h *OperationHandler) DeleteOperation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.operationService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "operation deleted"})
}
