package base58

import (
	"fmt"
	"math/big"
)

// radix is the encoding base as a big.Int. Shared, read-only.
var radix = big.NewInt(58)

// magnitudeFromBytes interprets b as an unsigned big-endian integer.
// big.Int.SetBytes is unsigned by contract, so a leading byte with its
// high bit set can never flip the value negative.
func magnitudeFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// divMod58 divides m by 58 in place and returns the remainder, which
// is always in [0,57].
func divMod58(m *big.Int) int {
	rem := new(big.Int)
	m.DivMod(m, radix, rem)
	return int(rem.Int64())
}

// mulAdd58 folds one more digit into m: m = m*58 + digit. Digits come
// from the alphabet table, so a value outside [0,57] is a bug in the
// caller rather than bad input.
func mulAdd58(m *big.Int, digit int) *big.Int {
	if digit < 0 || digit > 57 {
		panic(fmt.Sprintf("base58: digit %d out of range", digit))
	}
	m.Mul(m, radix)
	return m.Add(m, big.NewInt(int64(digit)))
}

// magnitudeBytes returns the minimal unsigned big-endian form of m:
// no leading zero byte, and an empty slice for zero. Fixed-width
// callers recover their width with PadToSize.
func magnitudeBytes(m *big.Int) []byte {
	return m.Bytes()
}

func isZero(m *big.Int) bool {
	return m.Sign() == 0
}
