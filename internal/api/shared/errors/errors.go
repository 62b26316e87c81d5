package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// ErrorCode is the machine readable code in every error response
type ErrorCode string

const (
	ErrCodeBadRequest        ErrorCode = "bad_request"
	ErrCodeNotFound          ErrorCode = "not_found"
	ErrCodeValidationFailed  ErrorCode = "validation_failed"
	ErrCodeUnauthorized      ErrorCode = "unauthorized"
	ErrCodeInvalidSignature  ErrorCode = "invalid_signature"
	ErrCodeSubscriptionLimit ErrorCode = "subscription_limit_exceeded"
	ErrCodeInternalError     ErrorCode = "internal_error"
)

// APIError is the JSON body of every non-2xx response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	raw, _ := json.Marshal(e)
	return string(raw)
}

func newAPIError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{Code: code, Message: message, Details: strings.Join(details, ", ")}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newAPIError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeUnauthorized, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newAPIError(ErrCodeInternalError, message, details)
}

// FromDomain maps a service error to its HTTP status and API error.
// The bool is false for errors that are not the client's fault.
func FromDomain(err error) (int, *APIError, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		return http.StatusUnauthorized, newAPIError(ErrCodeInvalidSignature, "Wallet ownership could not be verified", []string{err.Error()}), true
	case errors.Is(err, domain.ErrWalletNotFound):
		return http.StatusNotFound, NewNotFoundError("Wallet not found"), true
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, NewNotFoundError("Asset not found"), true
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, NewNotFoundError("Notification not found"), true
	case errors.Is(err, domain.ErrSubscriptionLimitExceeded):
		return http.StatusForbidden, newAPIError(ErrCodeSubscriptionLimit, "Asset binding limit reached for the current subscription", nil), true
	case errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrUnsupportedChain),
		errors.Is(err, domain.ErrInvalidTokenID):
		return http.StatusUnprocessableEntity, NewValidationError(err.Error()), true
	default:
		return http.StatusInternalServerError, NewInternalError("Internal server error"), false
	}
}
