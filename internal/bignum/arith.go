package bignum

// Add returns a + b.
//
// Operands of different signs are handed to Sub; equal signs add the
// magnitudes digit by digit. A carry out of the MaxDigits-th digit is
// dropped.
func Add(a, b Int) Int {
	if a.neg != b.neg {
		if a.neg {
			return Sub(b, Abs(a))
		}
		return Sub(a, Abs(b))
	}
	sum := addDigits(a.mag(), b.mag())
	if len(sum) > MaxDigits {
		sum = sum[:MaxDigits]
	}
	return makeInt(a.neg, sum)
}

// Sub returns a - b.
//
// Operands of different signs are handed to Add. For equal signs the smaller
// magnitude is subtracted from the larger and the sign flips when |a| < |b|.
func Sub(a, b Int) Int {
	if a.neg != b.neg {
		if a.neg {
			return Neg(Add(Abs(a), Abs(b)))
		}
		return Add(a, Abs(b))
	}
	x, y := a.mag(), b.mag()
	neg := a.neg
	if cmpDigits(x, y) < 0 {
		x, y = y, x
		neg = !neg
	}
	return makeInt(neg, subDigits(x, y))
}

// Mul returns a * b.
//
// Schoolbook multiplication: every digit of b produces a partial product
// against a, shifted into place and accumulated with Add. Terms landing at
// or beyond position MaxDigits are dropped.
func Mul(a, b Int) Int {
	x := a.mag()
	var acc Int
	for i, d := range b.mag() {
		if d == 0 {
			continue
		}
		acc = Add(acc, makeInt(false, partialProduct(x, d, i)))
	}
	return makeInt(a.neg != b.neg, acc.mag())
}

// partialProduct returns x * d shifted left by shift digits, keeping only
// positions below MaxDigits.
func partialProduct(x []Digit, d Digit, shift int) []Digit {
	if shift >= MaxDigits {
		return nil
	}
	out := make([]Digit, shift, min(shift+len(x)+1, MaxDigits))
	var carry uint32
	for j, xd := range x {
		if shift+j >= MaxDigits {
			return out
		}
		prod := uint32(xd)*uint32(d) + carry
		out = append(out, Digit(prod%Base)) //nolint:gosec // G115: remainder is below Base.
		carry = prod / Base
	}
	if carry > 0 && shift+len(x) < MaxDigits {
		out = append(out, Digit(carry)) //nolint:gosec // G115: carry is below Base.
	}
	return out
}
