package bignum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse indicates a malformed decimal string.
var ErrParse = errors.New("invalid numeric format")

// ParseInt parses a decimal integer with an optional sign. Underscores may
// separate digits. Magnitudes too large for MaxDigits are reduced the same
// way FromUint64 and the arithmetic operations reduce them.
func ParseInt(s string) (Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Int{}, fmt.Errorf("%w: %w: empty string", ErrInvalidInput, ErrParse)
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" || s[0] == '_' || s[len(s)-1] == '_' {
		return Int{}, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrParse, s)
	}

	var mag []Digit
	for i := range len(s) {
		ch := s[i]
		if ch == '_' {
			continue
		}
		if ch < '0' || ch > '9' {
			return Int{}, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrParse, s)
		}
		mag = mulDigit(mag, 10)
		mag = addDigits(mag, []Digit{Digit(ch - '0')})
		if len(mag) > MaxDigits {
			mag = trim(mag[:MaxDigits])
		}
	}
	return makeInt(neg, mag), nil
}

// MustParse is like ParseInt but panics on malformed input.
func MustParse(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(err)
	}
	return x
}
