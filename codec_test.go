package base58

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", []byte{}, ""},
		{"nil", nil, ""},
		{"single zero byte", []byte{0}, "1"},
		{"all zero bytes", []byte{0, 0, 0}, "1"},
		{"smallest digit", []byte{1}, "2"},
		{"largest single digit", []byte{57}, "Z"},
		{"first two-digit value", []byte{58}, "21"},
		{"max single byte", []byte{255}, "5p"},
		{"two bytes", []byte{1, 0}, "5q"},
		{"ascii text", []byte("Hello"), "9aJCVZR"},
		{"leading zeros absorbed", []byte{0, 0, 1}, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Encode(tt.input)
			if result != tt.expected {
				t.Errorf("Encode(%v) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{"empty string", "", []byte{}},
		{"encoded zero", "1", []byte{}},
		{"smallest digit", "2", []byte{1}},
		{"largest single digit", "Z", []byte{57}},
		{"first two-digit value", "21", []byte{58}},
		{"max single byte", "5p", []byte{255}},
		{"ascii text", "9aJCVZR", []byte("Hello")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode(%q) returned error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.expected, result, cmp.Comparer(bytes.Equal)); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"zero digit", "abc0def"},
		{"capital O", "Oops"},
		{"capital I", "xIx"},
		{"lowercase l", "ll"},
		{"space", "a b"},
		{"non-ascii", "caf\xc3\xa9"},
		{"punctuation", "x-y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Errorf("Decode(%q) error = %v; want ErrInvalidCharacter", tt.input, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Decode(Encode(b)) yields the minimal form of b's magnitude,
	// i.e. b with any leading zero bytes stripped.
	inputs := [][]byte{
		{},
		{0},
		{0, 0, 0, 0},
		{1},
		{0, 1},
		{0, 0, 7, 0},
		{0x80},
		{0x80, 0, 0, 0},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte("the quick brown fox jumps over the lazy dog"),
	}

	for _, in := range inputs {
		decoded, err := Decode(Encode(in))
		if err != nil {
			t.Fatalf("round trip of %v failed: %v", in, err)
		}
		want := bytes.TrimLeft(in, "\x00")
		if !bytes.Equal(decoded, want) {
			t.Errorf("round trip of %v = %v; want %v", in, decoded, want)
		}
	}
}

func TestInt64RoundTrip(t *testing.T) {
	values := []int64{0, 1, 57, 58, 255, 1 << 32, math.MaxInt64, -1, -58, math.MinInt64}

	for _, v := range values {
		got, err := DecodeInt64(EncodeInt64(v))
		if err != nil {
			t.Fatalf("DecodeInt64(EncodeInt64(%d)) failed: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
}

func TestEncodeInt64Zero(t *testing.T) {
	if got := EncodeInt64(0); got != "1" {
		t.Errorf("EncodeInt64(0) = %q; want %q", got, "1")
	}
}

func TestPadToSize(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		size     int
		expected []byte
	}{
		{"grow", []byte{0x01, 0x02}, 4, []byte{0x00, 0x00, 0x01, 0x02}},
		{"same size", []byte{0x01, 0x02}, 2, []byte{0x01, 0x02}},
		{"safe shrink", []byte{0x00, 0x00, 0x01}, 1, []byte{0x01}},
		{"empty to width", []byte{}, 3, []byte{0x00, 0x00, 0x00}},
		{"shrink to zero", []byte{0x00, 0x00}, 0, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PadToSize(tt.input, tt.size)
			if err != nil {
				t.Fatalf("PadToSize(%v, %d) returned error: %v", tt.input, tt.size, err)
			}
			if !bytes.Equal(result, tt.expected) {
				t.Errorf("PadToSize(%v, %d) = %v; want %v", tt.input, tt.size, result, tt.expected)
			}
		})
	}
}

func TestPadToSizeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		size  int
	}{
		{"unsafe shrink", []byte{0x01, 0x02}, 1},
		{"unsafe shrink to zero", []byte{0x01}, 0},
		{"negative size", []byte{0x01}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PadToSize(tt.input, tt.size)
			if !errors.Is(err, ErrSizeMismatch) {
				t.Errorf("PadToSize(%v, %d) error = %v; want ErrSizeMismatch", tt.input, tt.size, err)
			}
		})
	}
}

func TestDecodeToSize(t *testing.T) {
	got, err := DecodeToSize(Encode([]byte{0x01, 0x02}), 4)
	if err != nil {
		t.Fatalf("DecodeToSize failed: %v", err)
	}
	if want := []byte{0x00, 0x00, 0x01, 0x02}; !bytes.Equal(got, want) {
		t.Errorf("DecodeToSize = %v; want %v", got, want)
	}

	if _, err := DecodeToSize(Encode([]byte{0x01, 0x02}), 1); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestMulAdd58PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range digit")
		}
	}()
	mulAdd58(magnitudeFromBytes([]byte{1}), 58)
}
