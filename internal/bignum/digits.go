package bignum

// Normalize returns a copy of digits without most significant zeros. An empty
// or all-zero sequence normalizes to the single digit 0.
func Normalize(digits []Digit) []Digit {
	t := trim(digits)
	if len(t) == 0 {
		return []Digit{0}
	}
	out := make([]Digit, len(t))
	copy(out, t)
	return out
}

// trim reslices digits to drop most significant zeros. Zero becomes nil.
func trim(digits []Digit) []Digit {
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return nil
	}
	return digits
}

// CmpAbs compares |a| and |b| and returns -1, 0 or +1.
func CmpAbs(a, b Int) int {
	return cmpDigits(a.mag(), b.mag())
}

// Cmp compares a and b and returns -1, 0 or +1.
func Cmp(a, b Int) int {
	switch {
	case a.neg != b.neg:
		if a.neg {
			return -1
		}
		return 1
	case a.neg:
		return -CmpAbs(a, b)
	default:
		return CmpAbs(a, b)
	}
}

// Equal reports whether a and b represent the same value.
func Equal(a, b Int) bool { return Cmp(a, b) == 0 }

// cmpDigits compares two magnitudes: the longer one is larger, equal lengths
// are compared from the most significant digit down.
func cmpDigits(a, b []Digit) int {
	a = trim(a)
	b = trim(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func digitAt(x []Digit, i int) uint32 {
	if i < len(x) {
		return uint32(x[i])
	}
	return 0
}

// addDigits returns x + y. The result may be one digit longer than the
// longest operand; capping is left to the caller.
func addDigits(x, y []Digit) []Digit {
	n := max(len(x), len(y))
	out := make([]Digit, n, n+1)
	var carry uint32
	for i := range n {
		sum := digitAt(x, i) + digitAt(y, i) + carry
		out[i] = Digit(sum % Base) //nolint:gosec // G115: remainder is below Base.
		carry = sum / Base
	}
	if carry > 0 {
		out = append(out, Digit(carry)) //nolint:gosec // G115: carry is 0 or 1.
	}
	return out
}

// subDigits returns x - y. Requires x >= y.
func subDigits(x, y []Digit) []Digit {
	out := make([]Digit, len(x))
	var borrow uint32
	for i := range x {
		diff := digitAt(x, i) + Base - digitAt(y, i) - borrow
		if diff < Base {
			borrow = 1
		} else {
			diff -= Base
			borrow = 0
		}
		out[i] = Digit(diff) //nolint:gosec // G115: diff is below Base.
	}
	return trim(out)
}

// mulDigit returns x * d without capping.
func mulDigit(x []Digit, d Digit) []Digit {
	if d == 0 || len(x) == 0 {
		return nil
	}
	out := make([]Digit, len(x)+1)
	var carry uint32
	for i, xd := range x {
		prod := uint32(xd)*uint32(d) + carry
		out[i] = Digit(prod % Base) //nolint:gosec // G115: remainder is below Base.
		carry = prod / Base
	}
	out[len(x)] = Digit(carry) //nolint:gosec // G115: carry is below Base.
	return trim(out)
}

// divDigit returns x / d and x % d. Requires d > 0.
func divDigit(x []Digit, d Digit) (q []Digit, r Digit) {
	out := make([]Digit, len(x))
	var rem uint32
	for i := len(x) - 1; i >= 0; i-- {
		cur := rem*Base + uint32(x[i])
		out[i] = Digit(cur / uint32(d)) //nolint:gosec // G115: quotient digit is below Base since rem < d.
		rem = cur % uint32(d)
	}
	return trim(out), Digit(rem) //nolint:gosec // G115: remainder is below d.
}
