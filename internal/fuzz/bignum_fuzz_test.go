package fuzztests

import (
	"math/big"
	"testing"

	"bigcalc/internal/bignum"
	"bigcalc/internal/testkit"
)

const maxFuzzInput = 1 << 12

func FuzzParseInt(f *testing.F) {
	addTextSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		x, err := bignum.ParseInt(input)
		if err != nil {
			return
		}
		if err := testkit.CheckInt(x); err != nil {
			t.Fatalf("ParseInt(%q): %v", input, err)
		}
		// The canonical decimal form parses back to the same value.
		y, err := bignum.ParseInt(x.String())
		if err != nil {
			t.Fatalf("ParseInt(%q) failed on String() output %q: %v", input, x.String(), err)
		}
		if x != y {
			t.Fatalf("round trip of %q: %v != %v", input, x, y)
		}
		if got := testkit.BigOf(x); got.CmpAbs(testkit.Modulus()) >= 0 {
			t.Fatalf("ParseInt(%q) magnitude %v not reduced", input, got)
		}
	})
}

// digitsOf decodes two bytes per digit into a value of at most MaxDigits
// digits.
func digitsOf(raw []byte, neg bool) bignum.Int {
	n := min(len(raw)/2, bignum.MaxDigits)
	digits := make([]bignum.Digit, n)
	for i := range digits {
		digits[i] = bignum.Digit(uint16(raw[2*i]) | uint16(raw[2*i+1]&0x7f)<<8)
	}
	x, err := bignum.FromDigits(digits)
	if err != nil {
		panic(err)
	}
	if neg {
		return bignum.Neg(x)
	}
	return x
}

func FuzzArithmetic(f *testing.F) {
	addDigitSeeds(f)
	f.Fuzz(func(t *testing.T, rawA, rawB []byte, negA, negB bool) {
		a, b := digitsOf(rawA, negA), digitsOf(rawB, negB)
		ba, bb := testkit.BigOf(a), testkit.BigOf(b)

		check := func(op string, got bignum.Int, want *big.Int) {
			t.Helper()
			if err := testkit.CheckInt(got); err != nil {
				t.Fatalf("%v %s %v: %v", a, op, b, err)
			}
			if testkit.BigOf(got).Cmp(testkit.Reduce(want)) != 0 {
				t.Fatalf("%v %s %v = %v, want %v", a, op, b, got, testkit.Reduce(want))
			}
		}
		check("+", bignum.Add(a, b), new(big.Int).Add(ba, bb))
		check("-", bignum.Sub(a, b), new(big.Int).Sub(ba, bb))
		check("*", bignum.Mul(a, b), new(big.Int).Mul(ba, bb))

		q, r, err := bignum.QuoRem(a, b)
		if b.IsZero() {
			if err == nil {
				t.Fatalf("%v / 0 did not fail", a)
			}
			return
		}
		if err != nil {
			t.Fatalf("%v / %v: %v", a, b, err)
		}
		wq, wr := new(big.Int).QuoRem(ba, bb, new(big.Int))
		check("/", q, wq)
		check("%", r, wr)
	})
}
