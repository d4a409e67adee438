package testkit

import (
	"fmt"
	"math/big"

	"fortio.org/safecast"

	"bigcalc/internal/bignum"
)

// CheckInt runs the representation invariants on x:
// 1) the digit count is within [1, MaxDigits]
// 2) every digit is below Base
// 3) the top digit is non-zero unless x is zero
// 4) zero is positive
func CheckInt(x bignum.Int) error {
	digits := x.Digits()

	// 1) bounded length
	if len(digits) < 1 || len(digits) > bignum.MaxDigits {
		return fmt.Errorf("digit count %d outside [1, %d]", len(digits), bignum.MaxDigits)
	}
	if len(digits) != x.Len() {
		return fmt.Errorf("x.Len() = %d but x.Digits() has %d entries", x.Len(), len(digits))
	}

	// 2) digit range
	for i, d := range digits {
		if d >= bignum.Base {
			return fmt.Errorf("digit %d is %d, not below %d", i, d, bignum.Base)
		}
	}

	// 3) normalized; 4) positive zero
	top := digits[len(digits)-1]
	if len(digits) > 1 && top == 0 {
		return fmt.Errorf("denormalized digits %v", digits)
	}
	if len(digits) == 1 && top == 0 {
		if !x.IsZero() || x.Sign() != 0 || x.IsNeg() {
			return fmt.Errorf("zero digits but IsZero=%v Sign=%d IsNeg=%v", x.IsZero(), x.Sign(), x.IsNeg())
		}
	} else if x.IsZero() {
		return fmt.Errorf("IsZero reported for digits %v", digits)
	}
	return nil
}

// Modulus returns Base^MaxDigits, the width every magnitude is reduced by.
func Modulus() *big.Int {
	bitsCount, err := safecast.Conv[uint](15 * bignum.MaxDigits)
	if err != nil {
		panic(err)
	}
	return new(big.Int).Lsh(big.NewInt(1), bitsCount)
}

// BigOf returns the value of x as a *big.Int.
func BigOf(x bignum.Int) *big.Int {
	out := new(big.Int)
	digits := x.Digits()
	for i := len(digits) - 1; i >= 0; i-- {
		out.Lsh(out, 15)
		out.Or(out, big.NewInt(int64(digits[i])))
	}
	if x.IsNeg() {
		out.Neg(out)
	}
	return out
}

// Reduce applies fixed-width truncation to v: the sign is kept and the
// magnitude is taken modulo Base^MaxDigits.
func Reduce(v *big.Int) *big.Int {
	mag := new(big.Int).Abs(v)
	mag.Mod(mag, Modulus())
	if v.Sign() < 0 {
		mag.Neg(mag)
	}
	return mag
}

// FromBig converts an in-range *big.Int to an Int through its decimal form.
func FromBig(v *big.Int) bignum.Int {
	return bignum.MustParse(v.String())
}
