package base58

// Alphabet is the Flickr-style Base58 alphabet. Unlike the Bitcoin
// alphabet it orders lowercase before uppercase; both exclude the
// visually ambiguous characters 0, O, I and l.
const Alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// digits maps an ASCII byte to its alphabet value, -1 for bytes that
// are not Base58 digits. Built once and never mutated afterwards.
var digits [128]int8

func init() {
	for i := range digits {
		digits[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		digits[Alphabet[i]] = int8(i)
	}
}

// digitValue returns the alphabet value of c, or -1 when c is not a
// Base58 digit (including any byte outside ASCII).
func digitValue(c byte) int {
	if c >= 0x80 {
		return -1
	}
	return int(digits[c])
}
