package cache

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the key is not cached.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache memoizes derived encodings across processes. Values are
// deterministic functions of their keys, so staleness is impossible;
// a TTL only bounds memory.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
