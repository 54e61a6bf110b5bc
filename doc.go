// Package base58 implements a Flickr-style Base58 binary-to-text codec:
// arbitrary big-endian byte sequences are converted to and from strings
// over a 58-character alphabet that omits the visually ambiguous
// characters 0, O, I and l.
//
// Unlike Base58Check, leading zero bytes are absorbed into the encoded
// magnitude rather than preserved as leading '1' characters; callers
// that need a fixed-width value back (such as an 8-byte integer or a
// 16-byte UUID) recover it with DecodeToSize. There is no checksum.
//
// All functions are pure and safe for unsynchronized concurrent use.
package base58
