package base58

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidCharacter is returned by the decode functions when the
	// input contains a character outside the Base58 alphabet.
	ErrInvalidCharacter = errors.New("invalid base58 character")

	// ErrSizeMismatch is returned by PadToSize (and the fixed-width
	// decode functions) when the requested size would truncate
	// non-zero data.
	ErrSizeMismatch = errors.New("size mismatch")
)

// encodedLen is an upper bound on the number of Base58 digits needed
// for n bytes: log58(256) is just under 1.37.
func encodedLen(n int) int {
	return n*137/100 + 1
}

// Encode converts big-endian bytes to a Base58 string.
//
// The empty slice encodes to the empty string. Any slice whose
// magnitude is zero encodes to "1"; redundant leading zero bytes are
// absorbed into the magnitude and produce no leading characters.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	m := magnitudeFromBytes(src)
	if isZero(m) {
		return string(Alphabet[0])
	}

	// Digits come out least significant first; reverse at the end.
	buf := make([]byte, 0, encodedLen(len(src)))
	for !isZero(m) {
		buf = append(buf, Alphabet[divMod58(m)])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// EncodeInt64 encodes v as its raw 8-byte big-endian bit pattern, so
// negative values encode by magnitude of the pattern rather than as
// mathematical negatives. DecodeInt64 is the inverse.
func EncodeInt64(v int64) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return Encode(b[:])
}

// Decode converts a Base58 string to the minimal big-endian byte form
// of its value: no leading zero byte, and an empty slice when the
// value is zero. Use DecodeToSize to recover a fixed width.
func Decode(text string) ([]byte, error) {
	m := new(big.Int)
	for i := 0; i < len(text); i++ {
		d := digitValue(text[i])
		if d < 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, text[i], i)
		}
		mulAdd58(m, d)
	}
	return magnitudeBytes(m), nil
}

// DecodeToSize decodes text and front-pads the result to exactly size
// bytes. See PadToSize for the shrink policy.
func DecodeToSize(text string, size int) ([]byte, error) {
	raw, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return PadToSize(raw, size)
}

// DecodeInt64 decodes text as an 8-byte big-endian bit pattern.
func DecodeInt64(text string) (int64, error) {
	b, err := DecodeToSize(text, 8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// PadToSize front-pads b with zero bytes to reach size. Growing is
// always allowed; shrinking is allowed only when every dropped leading
// byte is zero, otherwise ErrSizeMismatch is returned. Needed because
// Decode returns the minimal form and cannot know how wide the
// original value was.
func PadToSize(b []byte, size int) ([]byte, error) {
	switch {
	case size < 0:
		return nil, fmt.Errorf("%w: negative size %d", ErrSizeMismatch, size)
	case size == len(b):
		return b, nil
	case size > len(b):
		out := make([]byte, size)
		copy(out[size-len(b):], b)
		return out, nil
	}

	for i := 0; i < len(b)-size; i++ {
		if b[i] != 0 {
			return nil, fmt.Errorf("%w: size %d is shorter than length %d and the leading bytes are not all zero",
				ErrSizeMismatch, size, len(b))
		}
	}
	out := make([]byte, size)
	copy(out, b[len(b)-size:])
	return out, nil
}
