package bignum

// Quo returns the quotient a / b truncated toward zero.
func Quo(a, b Int) (Int, error) {
	q, _, err := QuoRem(a, b)
	return q, err
}

// QuoRem returns the quotient truncated toward zero and the remainder, which
// takes the sign of a, so that a = q*b + r and |r| < |b|.
func QuoRem(a, b Int) (q, r Int, err error) {
	if b.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}
	x, y := a.mag(), b.mag()
	if cmpDigits(x, y) < 0 {
		return Int{}, a, nil
	}
	// Scale both operands so the divisor's leading digit is large enough for
	// the two-digit estimate to need only a few corrections.
	f := Digit(Base / (uint32(y[len(y)-1]) + 1)) //nolint:gosec // G115: quotient is at most Base/2.
	u := mulDigit(x, f)
	v := mulDigit(y, f)

	qd, rd := divLarge(u, v)
	rd, _ = divDigit(rd, f)
	return makeInt(a.neg != b.neg, qd), makeInt(a.neg, rd), nil
}

// divLarge divides u by v, both uncapped magnitudes with u >= v and v
// scaled so its leading digit is large. It works from the most significant
// end: each step brings down one digit of u into the running remainder,
// estimates a quotient digit from the remainder's top two digits and the
// divisor's top digit, and corrects it downward by trial multiplication.
func divLarge(u, v []Digit) (q, r []Digit) {
	n := len(v)
	top := uint32(v[n-1])
	q = make([]Digit, len(u)-n+1)

	rem := make([]Digit, n-1, n+1)
	copy(rem, u[len(u)-n+1:])
	rem = trim(rem)

	for j := len(u) - n; j >= 0; j-- {
		rem = trim(append([]Digit{u[j]}, rem...))
		if len(rem) < n {
			continue
		}

		qhat := (digitAt(rem, n)*Base + digitAt(rem, n-1)) / top
		if qhat > Base-1 {
			qhat = Base - 1
		}
		trial := mulDigit(v, Digit(qhat)) //nolint:gosec // G115: qhat is capped below Base.
		for cmpDigits(trial, rem) > 0 {
			qhat--
			trial = mulDigit(v, Digit(qhat)) //nolint:gosec // G115: qhat is capped below Base.
		}
		rem = subDigits(rem, trial)
		q[j] = Digit(qhat) //nolint:gosec // G115: qhat is capped below Base.
	}
	return trim(q), rem
}
