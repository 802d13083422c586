package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cardguard/internal/errors"
	"cardguard/internal/model"
	"cardguard/internal/service"
)

// CardHandler handles card endpoints.
type CardHandler struct {
	cardService service.CardService
}

// NewCardHandler creates a new card handler.
func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents a card creation request. Variant parameters
// that do not belong to the requested type are ignored; absent ones get the
// documented defaults.
type CreateCardRequest struct {
	ClientID         uint    `json:"client_id" validate:"required"`
	Type             string  `json:"type" validate:"required,oneof=DEBIT CREDIT PREPAID"`
	Number           string  `json:"number,omitempty" validate:"omitempty,len=16,numeric"`
	ExpirationDate   string  `json:"expiration_date,omitempty"`
	Status           string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE BLOCKED SUSPENDED"`
	DailyCeiling     *string `json:"daily_ceiling,omitempty"`
	MonthlyCeiling   *string `json:"monthly_ceiling,omitempty"`
	InterestRate     *string `json:"interest_rate,omitempty"`
	AvailableBalance *string `json:"available_balance,omitempty"`
}

// UpdateCardRequest represents a card update request.
type UpdateCardRequest struct {
	Number           string  `json:"number,omitempty" validate:"omitempty,len=16,numeric"`
	ExpirationDate   string  `json:"expiration_date,omitempty"`
	Status           string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE BLOCKED SUSPENDED"`
	DailyCeiling     *string `json:"daily_ceiling,omitempty"`
	MonthlyCeiling   *string `json:"monthly_ceiling,omitempty"`
	InterestRate     *string `json:"interest_rate,omitempty"`
	AvailableBalance *string `json:"available_balance,omitempty"`
}

func parseDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (req *CreateCardRequest) toCard() (*model.Card, error) {
	card := &model.Card{
		ClientID: req.ClientID,
		Type:     model.CardType(req.Type),
		Number:   req.Number,
		Status:   model.CardStatus(req.Status),
	}

	if req.ExpirationDate != "" {
		expiry, err := time.Parse(time.RFC3339, req.ExpirationDate)
		if err != nil {
			return nil, err
		}
		card.ExpirationDate = expiry
	}

	var err error
	if card.DailyCeiling, err = parseDecimal(req.DailyCeiling); err != nil {
		return nil, err
	}
	if card.MonthlyCeiling, err = parseDecimal(req.MonthlyCeiling); err != nil {
		return nil, err
	}
	if card.InterestRate, err = parseDecimal(req.InterestRate); err != nil {
		return nil, err
	}
	if card.AvailableBalance, err = parseDecimal(req.AvailableBalance); err != nil {
		return nil, err
	}
	return card, nil
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// CreateCard godoc
// @Summary Create a card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCardRequest true "Card data"
// @Success 201 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [post]
func (h *CardHandler) CreateCard(c echo.Context) error {
	var req CreateCardRequest
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

	card, err := req.toCard()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REQUEST",
		})
	}

	created, err := h.cardService.Create(c.Request().Context(), card)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// GetCard godoc
// @Summary Get card by id
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id} [get]
func (h *CardHandler) GetCard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	card, err := h.cardService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// ListCards godoc
// @Summary List cards, optionally filtered by client, status or number
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param client_id query int false "Owning client id"
// @Param status query string false "Lifecycle status"
// @Param number query string false "Card number"
// @Success 200 {array} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Router /cards [get]
func (h *CardHandler) ListCards(c echo.Context) error {
	ctx := c.Request().Context()

	if number := c.QueryParam("number"); number != "" {
		card, err := h.cardService.GetByNumber(ctx, number)
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, []*model.Card{card})
	}

	if clientIDStr := c.QueryParam("client_id"); clientIDStr != "" {
		clientID, err := strconv.ParseUint(clientIDStr, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid client_id",
				Code:  "INVALID_ID",
			})
		}
		cards, err := h.cardService.ListByClient(ctx, uint(clientID))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, cards)
	}

	if status := c.QueryParam("status"); status != "" {
		cards, err := h.cardService.ListByStatus(ctx, model.CardStatus(status))
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
		return c.JSON(http.StatusOK, cards)
	}

	cards, err := h.cardService.List(ctx)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// UpdateCard godoc
// @Summary Update a card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Param request body UpdateCardRequest true "Card fields"
// @Success 200 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id} [put]
func (h *CardHandler) UpdateCard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateCardRequest
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

	ctx := c.Request().Context()
	card, err := h.cardService.Get(ctx, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if req.Number != "" {
		card.Number = req.Number
	}
	if req.Status != "" {
		card.Status = model.CardStatus(req.Status)
	}
	if req.ExpirationDate != "" {
		expiry, err := time.Parse(time.RFC3339, req.ExpirationDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_REQUEST",
			})
		}
		card.ExpirationDate = expiry
	}
	for _, field := range []struct {
		src *string
		dst **decimal.Decimal
	}{
		{req.DailyCeiling, &card.DailyCeiling},
		{req.MonthlyCeiling, &card.MonthlyCeiling},
		{req.InterestRate, &card.InterestRate},
		{req.AvailableBalance, &card.AvailableBalance},
	} {
		parsed, err := parseDecimal(field.src)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_REQUEST",
			})
		}
		if parsed != nil {
			*field.dst = parsed
		}
	}

	updated, err := h.cardService.Update(ctx, card)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCard godoc
// @Summary Delete a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.cardService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "card deleted"})
}

// ActivateCard godoc
// @Summary Activate a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /cards/{id}/activate [post]
func (h *CardHandler) ActivateCard(c echo.Context) error {
	return h.transition(c, h.cardService.Activate)
}

// BlockCard godoc
// @Summary Block a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/block [post]
func (h *CardHandler) BlockCard(c echo.Context) error {
	return h.transition(c, h.cardService.Block)
}

// SuspendCard godoc
// @Summary Suspend a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/suspend [post]
func (h *CardHandler) SuspendCard(c echo.Context) error {
	return h.transition(c, h.cardService.Suspend)
}

// RenewCard godoc
// @Summary Renew a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 404 {object} errors.ErrorResponse
// @Router /cards/{id}/renew [post]
func (h *CardHandler) RenewCard(c echo.Context) error {
	return h.transition(c, h.cardService.Renew)
}

func (h *CardHandler) transition(c echo.Context, fn func(ctx context.Context, id uint) (*model.Card, error)) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	card, err := fn(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}
