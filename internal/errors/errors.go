package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AppError represents an application error with HTTP context
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// ErrorResponse is the JSON response format for errors
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// WriteJSON writes the error as JSON response
func (e *AppError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: e})
}

// ============================================================
// ERROR CONSTRUCTORS
// ============================================================

// Validation Errors (400)
func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func InvalidJSON(details string) *AppError {
	return &AppError{
		Code:       "INVALID_JSON",
		Message:    "Invalid JSON in request body",
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

func MissingField(field string) *AppError {
	return &AppError{
		Code:       "MISSING_FIELD",
		Message:    fmt.Sprintf("Required field '%s' is missing", field),
		StatusCode: http.StatusBadRequest,
	}
}

// InvalidPayload reports a malformed binary payload (bad hex, too large).
func InvalidPayload(details string) *AppError {
	return &AppError{
		Code:       "INVALID_PAYLOAD",
		Message:    "The provided payload is invalid",
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

// InvalidCharacter reports encoded text containing characters outside
// the Base58 alphabet.
func InvalidCharacter(details string) *AppError {
	return &AppError{
		Code:       "INVALID_CHARACTER",
		Message:    "Encoded text contains characters outside the Base58 alphabet",
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

// SizeMismatch reports a decoded value that does not fit the requested
// fixed width.
func SizeMismatch(details string) *AppError {
	return &AppError{
		Code:       "SIZE_MISMATCH",
		Message:    "Decoded value does not fit the requested size",
		Details:    details,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// InvalidUUID reports a UUID that could not be parsed.
func InvalidUUID(details string) *AppError {
	return &AppError{
		Code:       "INVALID_UUID",
		Message:    "The provided UUID is invalid",
		Details:    details,
		StatusCode: http.StatusBadRequest,
	}
}

// Rate Limit Error (429)
func RateLimitExceeded() *AppError {
	return &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Too many requests, please try again later",
		StatusCode: http.StatusTooManyRequests,
	}
}

// Server Errors (500)
func Internal(details string) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An internal server error occurred",
		Details:    details,
		StatusCode: http.StatusInternalServerError,
	}
}
