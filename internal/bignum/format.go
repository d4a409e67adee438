package bignum

import (
	"fmt"
	"strconv"
	"strings"
)

// decimalChunk is the largest power of ten below Base; rendering peels off
// four decimal digits per division.
const decimalChunk = 10_000

// String returns the exact decimal form of x, with a leading '-' when x is
// negative.
func (x Int) String() string {
	mag := x.mag()
	if len(mag) == 0 {
		return "0"
	}

	var parts []Digit
	for len(mag) > 0 {
		var r Digit
		mag, r = divDigit(mag, decimalChunk)
		parts = append(parts, r)
	}

	var sb strings.Builder
	sb.Grow(len(parts)*4 + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatUint(uint64(parts[len(parts)-1]), 10))
	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%04d", parts[i])
	}
	return sb.String()
}

// BaseM returns the digits as "(d0, d1, ..., dk)", least significant first,
// prefixed with '-' when x is negative. Zero renders as "0".
func (x Int) BaseM() string {
	mag := x.mag()
	if len(mag) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(mag)*7 + 3)
	if x.neg {
		sb.WriteByte('-')
	}
	sb.WriteByte('(')
	for i, d := range mag {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(d), 10))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Format implements fmt.Formatter. The verbs v, s and d print the decimal
// form and m prints the base-M digit tuple. Width and the '-' flag pad the
// output.
func (x Int) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 'v', 's', 'd':
		s = x.String()
	case 'm':
		s = x.BaseM()
	default:
		fmt.Fprintf(f, "%%!%c(bignum.Int=%s)", verb, x.String())
		return
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = f.Write([]byte(s))
}
