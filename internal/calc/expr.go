package calc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bigcalc/internal/bignum"
)

var (
	// ErrBadOperand reports an operand that is not an integer.
	ErrBadOperand = errors.New("operand is not an integer")
	// ErrBadExpr reports an expression that is not "<int> <op> <int>".
	ErrBadExpr = errors.New("malformed expression")
)

// ParseOperand parses a user supplied integer. Input is NFKC-normalised
// first so full-width digits and signs are accepted, and U+2212 is read as
// a minus sign.
func ParseOperand(s string) (bignum.Int, error) {
	s = normalizeInput(s)
	x, err := bignum.ParseInt(s)
	if err != nil {
		return bignum.Int{}, fmt.Errorf("%w: %q", ErrBadOperand, s)
	}
	return x, nil
}

func normalizeInput(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ReplaceAll(s, "−", "-")
	return strings.TrimSpace(s)
}

// Expr is a parsed binary expression.
type Expr struct {
	Source string
	A, B   bignum.Int
	Op     Op
}

// ParseExpr parses "<int> <op> <int>" with whitespace around the operator.
func ParseExpr(line string) (Expr, error) {
	fields := strings.Fields(norm.NFKC.String(line))
	if len(fields) != 3 {
		return Expr{}, fmt.Errorf("%w: want \"<int> <op> <int>\", got %d fields", ErrBadExpr, len(fields))
	}
	a, err := ParseOperand(fields[0])
	if err != nil {
		return Expr{}, err
	}
	op, err := ParseOp(fields[1])
	if err != nil {
		return Expr{}, err
	}
	b, err := ParseOperand(fields[2])
	if err != nil {
		return Expr{}, err
	}
	return Expr{Source: strings.TrimSpace(line), A: a, B: b, Op: op}, nil
}

// Eval computes the expression.
func (e Expr) Eval() (bignum.Int, error) {
	return Apply(e.Op, e.A, e.B)
}

// String renders the expression in canonical form.
func (e Expr) String() string {
	return fmt.Sprintf("%s %s %s", e.A, e.Op, e.B)
}
