package errors

import (
	stderrors "errors"
	"net/http"

	"cardguard/internal/model"
)

// Invalid input: rejected at validation, before any persistence side effect.
var (
	// ErrNilCard is returned when a nil card is passed to a write path.
	ErrNilCard = stderrors.New("card cannot be nil")
	// ErrInvalidClientID is returned when a client id is not positive.
	ErrInvalidClientID = stderrors.New("client id must be positive")
	// ErrInvalidCardID is returned when a card id is not positive.
	ErrInvalidCardID = stderrors.New("card id must be positive")
	// ErrInvalidOperationID is returned when an operation id is not positive.
	ErrInvalidOperationID = stderrors.New("operation id must be positive")
	// ErrInvalidCardNumber is returned when a supplied card number is not a
	// 16-digit numeric string.
	ErrInvalidCardNumber = stderrors.New("card number must be 16 digits")
	// ErrInvalidStatus is returned when a status string is not a known state.
	ErrInvalidStatus = stderrors.New("invalid card status")
	// ErrInvalidOperationType is returned when an operation type is unknown.
	ErrInvalidOperationType = stderrors.New("invalid operation type")
	// ErrInvalidSeverity is returned when an alert severity is unknown.
	ErrInvalidSeverity = stderrors.New("invalid alert severity")
	// ErrInvalidAmount is returned when an amount is not positive.
	ErrInvalidAmount = stderrors.New("invalid amount")
	// ErrClientNameRequired is returned when a client name is empty.
	ErrClientNameRequired = stderrors.New("client name is required")
)

// Not found: a referenced entity id missed in storage.
var (
	// ErrCardNotFound is returned when a card is not found.
	ErrCardNotFound = stderrors.New("card not found")
	// ErrClientNotFound is returned when a client is not found.
	ErrClientNotFound = stderrors.New("client not found")
	// ErrOperationNotFound is returned when an operation is not found.
	ErrOperationNotFound = stderrors.New("operation not found")
)

// Illegal state transition: rejected before any mutation.
var (
	// ErrCardAlreadyActive is returned when activating an ACTIVE card.
	ErrCardAlreadyActive = stderrors.New("card is already active")
	// ErrCardNotActive is returned when recording an operation against a
	// card that is not in ACTIVE status.
	ErrCardNotActive = stderrors.New("card is not active")
)

// Storage failure surfaced as a distinct, non-retryable condition.
var (
	// ErrCardNumberExhausted is returned when unique card number generation
	// runs out of attempts.
	ErrCardNumberExhausted = stderrors.New("card number generation exhausted")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case stderrors.Is(err, ErrCardNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CARD_NOT_FOUND")
	case stderrors.Is(err, ErrClientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLIENT_NOT_FOUND")
	case stderrors.Is(err, ErrOperationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "OPERATION_NOT_FOUND")
	case stderrors.Is(err, ErrCardAlreadyActive):
		return NewHTTPError(http.StatusConflict, err.Error(), "CARD_ALREADY_ACTIVE")
	case stderrors.Is(err, ErrCardNotActive):
		return NewHTTPError(http.StatusConflict, err.Error(), "CARD_NOT_ACTIVE")
	case stderrors.Is(err, ErrNilCard),
		stderrors.Is(err, ErrInvalidClientID),
		stderrors.Is(err, ErrInvalidCardID),
		stderrors.Is(err, ErrInvalidOperationID),
		stderrors.Is(err, ErrInvalidCardNumber),
		stderrors.Is(err, ErrInvalidStatus),
		stderrors.Is(err, ErrInvalidOperationType),
		stderrors.Is(err, ErrInvalidSeverity),
		stderrors.Is(err, ErrInvalidAmount),
		stderrors.Is(err, ErrClientNameRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_INPUT")
	case stderrors.Is(err, model.ErrUnknownCardType):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "DATA_CORRUPTION")
	case stderrors.Is(err, ErrCardNumberExhausted):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "NUMBER_SPACE_EXHAUSTED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
