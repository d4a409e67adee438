package bignum

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

const (
	// Base is the radix M of the digit representation (2^15).
	Base = 1 << 15
	// MaxDigits is the capacity N of an Int. Magnitudes needing more digits
	// are reduced modulo Base^MaxDigits without reporting an error.
	MaxDigits = 50
)

var (
	// ErrInvalidInput reports a value that cannot be turned into an Int.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDigitRange reports a digit outside [0, Base).
	ErrDigitRange = errors.New("digit out of range")
	// ErrDivisionByZero indicates an attempt to divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Digit is a single base-M digit.
type Digit uint16

// Int is a fixed-width signed integer in sign-magnitude form.
//
// Digits are stored least significant first in a fixed array, so an Int is a
// plain value: copying it never shares storage and no operation mutates its
// operands. The zero value is the number 0.
//
// Zero is always positive: every constructor and operation clears the sign
// of a zero magnitude.
type Int struct {
	neg bool
	// n is the count of significant digits; 0 encodes zero.
	n int
	d [MaxDigits]Digit
}

// Zero returns the zero Int.
func Zero() Int { return Int{} }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v >= 0 {
		return FromUint64(uint64(v))
	}
	u := uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
	u++
	return Neg(FromUint64(u))
}

// FromUint64 creates an Int from a uint64.
func FromUint64(v uint64) Int {
	var x Int
	for v > 0 && x.n < MaxDigits {
		x.d[x.n] = Digit(v % Base) //nolint:gosec // G115: remainder is below Base.
		x.n++
		v /= Base
	}
	return x
}

// FromDigits creates a non-negative Int from digits given least significant
// first. Digits past MaxDigits are dropped and the rest is normalized.
func FromDigits(digits []Digit) (Int, error) {
	if len(digits) > MaxDigits {
		digits = digits[:MaxDigits]
	}
	for i, d := range digits {
		if d >= Base {
			return Int{}, fmt.Errorf("%w: %w: digit %d is %d", ErrInvalidInput, ErrDigitRange, i, d)
		}
	}
	return makeInt(false, digits), nil
}

// FromInts is FromDigits for plain int digit lists.
func FromInts(digits []int) (Int, error) {
	if len(digits) > MaxDigits {
		digits = digits[:MaxDigits]
	}
	out := make([]Digit, len(digits))
	for i, v := range digits {
		d, err := safecast.Conv[uint16](v)
		if err != nil || d >= Base {
			return Int{}, fmt.Errorf("%w: %w: digit %d is %d", ErrInvalidInput, ErrDigitRange, i, v)
		}
		out[i] = Digit(d)
	}
	return makeInt(false, out), nil
}

// New creates an Int from a native integer, a digit sequence ([]Digit or
// []int), a decimal string or another Int. Any other kind of value fails
// with ErrInvalidInput.
func New(v any) (Int, error) {
	switch x := v.(type) {
	case Int:
		return x, nil
	case int:
		return FromInt64(int64(x)), nil
	case int8:
		return FromInt64(int64(x)), nil
	case int16:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case uint:
		return FromUint64(uint64(x)), nil
	case uint8:
		return FromUint64(uint64(x)), nil
	case uint16:
		return FromUint64(uint64(x)), nil
	case uint32:
		return FromUint64(uint64(x)), nil
	case uint64:
		return FromUint64(x), nil
	case []Digit:
		return FromDigits(x)
	case []int:
		return FromInts(x)
	case string:
		return ParseInt(x)
	default:
		return Int{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

// makeInt builds an Int from a magnitude that may be denormalized or longer
// than MaxDigits. The magnitude is copied.
func makeInt(neg bool, mag []Digit) Int {
	if len(mag) > MaxDigits {
		mag = mag[:MaxDigits]
	}
	mag = trim(mag)
	var x Int
	x.n = copy(x.d[:], mag)
	x.neg = neg && x.n > 0
	return x
}

// mag returns the significant digits; nil for zero.
func (x Int) mag() []Digit {
	if x.n == 0 {
		return nil
	}
	return x.d[:x.n:x.n]
}

// Digits returns a copy of the digits, least significant first. Zero yields
// the single digit 0.
func (x Int) Digits() []Digit {
	if x.n == 0 {
		return []Digit{0}
	}
	out := make([]Digit, x.n)
	copy(out, x.d[:x.n])
	return out
}

// Len returns the number of digits in normalized form (1 for zero).
func (x Int) Len() int {
	if x.n == 0 {
		return 1
	}
	return x.n
}

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.n == 0 }

// IsNeg reports whether x is strictly negative.
func (x Int) IsNeg() bool { return x.neg }

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.n == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Abs returns |x|.
func Abs(x Int) Int {
	x.neg = false
	return x
}

// Neg returns -x.
func Neg(x Int) Int {
	x.neg = !x.neg && x.n > 0
	return x
}

// Int64 converts x to int64 if it fits.
func (x Int) Int64() (int64, bool) {
	mag := x.mag()
	var u uint64
	for i := len(mag) - 1; i >= 0; i-- {
		if u > (^uint64(0))>>15 {
			return 0, false
		}
		u = u*Base + uint64(mag[i])
	}
	if !x.neg {
		if u > uint64(^uint64(0)>>1) {
			return 0, false
		}
		return int64(u), true
	}
	// Negative: allow magnitude up to 2^63.
	if u > uint64(^uint64(0)>>1)+1 {
		return 0, false
	}
	if u == uint64(^uint64(0)>>1)+1 {
		return -1 << 63, true
	}
	return -int64(u), true
}
