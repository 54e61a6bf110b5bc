package validator

import (
	"regexp"
	"strings"

	"github.com/darkodi/base58/internal/errors"
)

// RequestValidator validates codec API inputs
type RequestValidator struct {
	maxPayloadBytes int
	maxEncodedLen   int
	maxTargetSize   int
	maxNameLen      int
}

var hexPattern = regexp.MustCompile(`^([0-9a-fA-F]{2})*$`)

// NewRequestValidator creates a validator with default settings
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		maxPayloadBytes: 1024,
		maxEncodedLen:   2048,
		maxTargetSize:   1024,
		maxNameLen:      512,
	}
}

// ValidatePayloadHex validates a hex-encoded payload. The empty
// payload is legal; it encodes to the empty string.
func (v *RequestValidator) ValidatePayloadHex(payload string) *errors.AppError {
	if len(payload) > v.maxPayloadBytes*2 {
		return errors.InvalidPayload("payload exceeds maximum size")
	}
	if !hexPattern.MatchString(payload) {
		return errors.InvalidPayload("payload must be an even-length hex string")
	}
	return nil
}

// ValidateEncoded validates base58 text bounds. Alphabet membership is
// left to the codec, which reports the exact offending character.
func (v *RequestValidator) ValidateEncoded(encoded string) *errors.AppError {
	if len(encoded) > v.maxEncodedLen {
		return errors.BadRequest("encoded text exceeds maximum length")
	}
	return nil
}

// ValidateTargetSize validates a requested fixed width.
func (v *RequestValidator) ValidateTargetSize(size int) *errors.AppError {
	if size < 0 || size > v.maxTargetSize {
		return errors.BadRequest("size must be between 0 and 1024")
	}
	return nil
}

// ValidateName validates a name for name-based UUID derivation.
func (v *RequestValidator) ValidateName(name string) *errors.AppError {
	if strings.TrimSpace(name) == "" {
		return errors.MissingField("name")
	}
	if len(name) > v.maxNameLen {
		return errors.BadRequest("name exceeds maximum length")
	}
	return nil
}

// ============================================================
// CONFIGURATION METHODS
// ============================================================

// WithMaxPayloadBytes sets the maximum decoded payload size
func (v *RequestValidator) WithMaxPayloadBytes(n int) *RequestValidator {
	v.maxPayloadBytes = n
	return v
}

// WithMaxEncodedLen sets the maximum encoded text length
func (v *RequestValidator) WithMaxEncodedLen(n int) *RequestValidator {
	v.maxEncodedLen = n
	return v
}
