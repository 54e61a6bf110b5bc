package base58

import (
	"crypto/md5"
	"encoding/binary"

	"github.com/google/uuid"
)

// EncodeUUID encodes the 16 bytes of u. The high half has a 50-50
// chance of carrying a set sign bit, so the value is framed with a
// zero prefix byte before conversion; the prefix does not change the
// magnitude, it just keeps the 17-byte layout canonical.
func EncodeUUID(u uuid.UUID) string {
	var buf [17]byte
	copy(buf[1:], u[:])
	return Encode(buf[:])
}

// DecodeUUID decodes text back into a UUID. Inverse of EncodeUUID.
func DecodeUUID(text string) (uuid.UUID, error) {
	b, err := DecodeToSize(text, 16)
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, err
	}
	return u, nil
}

// NameUUID derives the deterministic, namespace-less RFC 4122
// version-3 UUID of name: the MD5 of the name's UTF-8 bytes with the
// version and variant bits forced. uuid.NewMD5 always hashes a 16-byte
// namespace ahead of the data, so the digest is assembled directly.
func NameUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte(name))
	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // RFC 4122 variant
	return uuid.UUID(sum)
}

// EncodeName derives the name-based UUID of name and encodes it.
func EncodeName(name string) string {
	return EncodeUUID(NameUUID(name))
}

// UUIDFromHalves assembles a UUID from its two big-endian 64-bit
// halves, treating each as a raw bit pattern.
func UUIDFromHalves(hi, lo int64) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(hi))
	binary.BigEndian.PutUint64(u[8:], uint64(lo))
	return u
}

// UUIDHalves splits u back into its two big-endian 64-bit halves.
func UUIDHalves(u uuid.UUID) (hi, lo int64) {
	return int64(binary.BigEndian.Uint64(u[:8])), int64(binary.BigEndian.Uint64(u[8:]))
}
