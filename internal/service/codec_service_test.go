package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/darkodi/base58"
	"github.com/darkodi/base58/internal/cache"
	"github.com/darkodi/base58/internal/logger"
)

func setupTestService(t *testing.T, c cache.Cache) *CodecService {
	t.Helper()
	uuids, err := base58.NewCachedUUIDCodec(16)
	if err != nil {
		t.Fatalf("Failed to create UUID codec: %v", err)
	}
	return NewCodecService(uuids, c, logger.Discard())
}

// mapCache is an in-memory Cache for tests.
type mapCache struct {
	entries map[string]string
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return "", cache.ErrCacheMiss
}

func (c *mapCache) Set(_ context.Context, key, value string) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *mapCache) Close() error { return nil }

func TestEncodeDecodeBytes(t *testing.T) {
	svc := setupTestService(t, nil)

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	encoded := svc.EncodeBytes(payload)

	decoded, err := svc.DecodeBytes(encoded)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		t.Errorf("round trip = %v; want %v", decoded, payload)
	}
}

func TestDecodeBytesInvalidCharacter(t *testing.T) {
	svc := setupTestService(t, nil)

	_, err := svc.DecodeBytes("0OIl")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("Expected ErrInvalidCharacter, got: %v", err)
	}
}

func TestDecodeBytesToSize(t *testing.T) {
	svc := setupTestService(t, nil)

	decoded, err := svc.DecodeBytesToSize(svc.EncodeBytes([]byte{0x01}), 4)
	if err != nil {
		t.Fatalf("DecodeBytesToSize failed: %v", err)
	}
	if want := []byte{0x00, 0x00, 0x00, 0x01}; !bytes.Equal(decoded, want) {
		t.Errorf("DecodeBytesToSize = %v; want %v", decoded, want)
	}

	_, err = svc.DecodeBytesToSize(svc.EncodeBytes([]byte{0x01, 0x02}), 1)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Expected ErrSizeMismatch, got: %v", err)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	svc := setupTestService(t, nil)

	for _, v := range []int64{0, 1, -1, 1 << 40} {
		decoded, err := svc.DecodeInt64(svc.EncodeInt64(v))
		if err != nil {
			t.Fatalf("DecodeInt64 failed for %d: %v", v, err)
		}
		if decoded != v {
			t.Errorf("round trip of %d = %d", v, decoded)
		}
	}
}

func TestEncodeUUID(t *testing.T) {
	svc := setupTestService(t, nil)

	encoded, err := svc.EncodeUUID("ffffffff-ffff-ffff-0000-000000000000")
	if err != nil {
		t.Fatalf("EncodeUUID failed: %v", err)
	}
	if encoded != "xBuEXKpA6iqg2dTbApBGRw" {
		t.Errorf("EncodeUUID = %q; want %q", encoded, "xBuEXKpA6iqg2dTbApBGRw")
	}

	decoded, err := svc.DecodeUUID(encoded)
	if err != nil {
		t.Fatalf("DecodeUUID failed: %v", err)
	}
	if decoded.String() != "ffffffff-ffff-ffff-0000-000000000000" {
		t.Errorf("DecodeUUID = %s", decoded)
	}
}

func TestEncodeUUIDInvalid(t *testing.T) {
	svc := setupTestService(t, nil)

	if _, err := svc.EncodeUUID("not-a-uuid"); !errors.Is(err, ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got: %v", err)
	}
}

func TestEncodeName(t *testing.T) {
	svc := setupTestService(t, nil)

	u, encoded := svc.EncodeName(context.Background(), "urn:abcd-efgh")
	if encoded != "rLVV8s4pKg43DGDJLG1sEd" {
		t.Errorf("EncodeName = %q; want %q", encoded, "rLVV8s4pKg43DGDJLG1sEd")
	}
	if u.Version() != 3 {
		t.Errorf("derived UUID version = %d; want 3", u.Version())
	}
}

func TestEncodeNameUsesCache(t *testing.T) {
	c := newMapCache()
	svc := setupTestService(t, c)
	ctx := context.Background()

	_, first := svc.EncodeName(ctx, "urn:abcd-efgh")
	if c.sets != 1 {
		t.Fatalf("Expected one cache set, got %d", c.sets)
	}

	// Second call must be served from the cache without another set.
	_, second := svc.EncodeName(ctx, "urn:abcd-efgh")
	if second != first {
		t.Errorf("cached result %q differs from computed %q", second, first)
	}
	if c.sets != 1 {
		t.Errorf("Expected cache hit, got %d sets", c.sets)
	}
}
