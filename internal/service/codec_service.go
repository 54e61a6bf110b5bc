package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/darkodi/base58"
	"github.com/darkodi/base58/internal/cache"
	"github.com/darkodi/base58/internal/logger"
)

// Custom errors for the service layer
var (
	ErrInvalidCharacter = errors.New("encoded text contains characters outside the alphabet")
	ErrSizeMismatch     = errors.New("decoded value does not fit the requested size")
	ErrInvalidUUID      = errors.New("invalid UUID")
)

// CodecService orchestrates encode/decode operations on top of the
// pure base58 package. The UUID paths go through an in-process
// memoizing codec; name derivations can additionally be shared across
// processes through an optional cache.
type CodecService struct {
	uuids *base58.CachedUUIDCodec
	cache cache.Cache // optional; nil disables the shared cache
	log   *logger.Logger
}

// NewCodecService creates a new service instance
func NewCodecService(uuids *base58.CachedUUIDCodec, c cache.Cache, log *logger.Logger) *CodecService {
	return &CodecService{
		uuids: uuids,
		cache: c,
		log:   log,
	}
}

// EncodeBytes encodes an arbitrary payload.
func (s *CodecService) EncodeBytes(data []byte) string {
	return base58.Encode(data)
}

// DecodeBytes decodes text into its minimal byte form.
func (s *CodecService) DecodeBytes(text string) ([]byte, error) {
	data, err := base58.Decode(text)
	if err != nil {
		return nil, mapCodecError(err)
	}
	return data, nil
}

// DecodeBytesToSize decodes text front-padded to a fixed width.
func (s *CodecService) DecodeBytesToSize(text string, size int) ([]byte, error) {
	data, err := base58.DecodeToSize(text, size)
	if err != nil {
		return nil, mapCodecError(err)
	}
	return data, nil
}

// EncodeInt64 encodes the raw 8-byte pattern of v.
func (s *CodecService) EncodeInt64(v int64) string {
	return base58.EncodeInt64(v)
}

// DecodeInt64 decodes text as an 8-byte pattern.
func (s *CodecService) DecodeInt64(text string) (int64, error) {
	v, err := base58.DecodeInt64(text)
	if err != nil {
		return 0, mapCodecError(err)
	}
	return v, nil
}

// EncodeUUID encodes a canonical UUID string.
func (s *CodecService) EncodeUUID(text string) (string, error) {
	u, err := uuid.Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidUUID, err)
	}
	return s.uuids.EncodeUUID(u), nil
}

// DecodeUUID decodes text back into a UUID.
func (s *CodecService) DecodeUUID(text string) (uuid.UUID, error) {
	u, err := s.uuids.DecodeUUID(text)
	if err != nil {
		return uuid.Nil, mapCodecError(err)
	}
	return u, nil
}

// EncodeName derives the name-based UUID of name and returns both the
// UUID and its encoding. Cache failures are logged and ignored; the
// derivation is always recomputable.
func (s *CodecService) EncodeName(ctx context.Context, name string) (uuid.UUID, string) {
	u := base58.NameUUID(name)

	key := "base58:name:" + name
	if s.cache != nil {
		if v, err := s.cache.Get(ctx, key); err == nil {
			return u, v
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cache get failed", "key", key, "error", err.Error())
		}
	}

	encoded := s.uuids.EncodeUUID(u)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, encoded); err != nil {
			s.log.Warn("cache set failed", "key", key, "error", err.Error())
		}
	}
	return u, encoded
}

// mapCodecError translates base58 sentinel errors into service-level
// ones, keeping the positional detail in the message.
func mapCodecError(err error) error {
	switch {
	case errors.Is(err, base58.ErrInvalidCharacter):
		return fmt.Errorf("%w: %s", ErrInvalidCharacter, err)
	case errors.Is(err, base58.ErrSizeMismatch):
		return fmt.Errorf("%w: %s", ErrSizeMismatch, err)
	default:
		return err
	}
}
