package base58

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedUUIDCodec memoizes UUID encode and decode results. The codec
// is deterministic, so caching is a pure speedup; keys are the
// immutable inputs themselves and the cache is never required for
// correctness. Safe for concurrent use.
type CachedUUIDCodec struct {
	enc *lru.Cache[uuid.UUID, string]
	dec *lru.Cache[string, uuid.UUID]
}

// NewCachedUUIDCodec creates a memoizing codec holding up to size
// entries per direction.
func NewCachedUUIDCodec(size int) (*CachedUUIDCodec, error) {
	enc, err := lru.New[uuid.UUID, string](size)
	if err != nil {
		return nil, err
	}
	dec, err := lru.New[string, uuid.UUID](size)
	if err != nil {
		return nil, err
	}
	return &CachedUUIDCodec{enc: enc, dec: dec}, nil
}

// EncodeUUID is a memoized EncodeUUID.
func (c *CachedUUIDCodec) EncodeUUID(u uuid.UUID) string {
	if s, ok := c.enc.Get(u); ok {
		return s
	}
	s := EncodeUUID(u)
	c.enc.Add(u, s)
	return s
}

// DecodeUUID is a memoized DecodeUUID. Failures are not cached.
func (c *CachedUUIDCodec) DecodeUUID(text string) (uuid.UUID, error) {
	if u, ok := c.dec.Get(text); ok {
		return u, nil
	}
	u, err := DecodeUUID(text)
	if err != nil {
		return uuid.Nil, err
	}
	c.dec.Add(text, u)
	return u, nil
}

// EncodeName derives the name-based UUID of name and encodes it
// through the memoized path.
func (c *CachedUUIDCodec) EncodeName(name string) string {
	return c.EncodeUUID(NameUUID(name))
}
