package calc

import (
	"errors"
	"fmt"
	"strings"

	"bigcalc/internal/bignum"
)

// ErrUnknownOp reports an operator symbol or name that is not recognised.
var ErrUnknownOp = errors.New("unknown operator")

// Op is one of the four arithmetic operations.
type Op uint8

const (
	// OpAdd is addition.
	OpAdd Op = iota + 1
	// OpSub is subtraction.
	OpSub
	// OpMul is multiplication.
	OpMul
	// OpQuo is truncating division.
	OpQuo
)

// Ops lists the operations in the order reports present them.
var Ops = [...]Op{OpAdd, OpSub, OpMul, OpQuo}

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpQuo:
		return "/"
	}
	return "?"
}

// Name returns a human label for the operation.
func (o Op) Name() string {
	switch o {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpQuo:
		return "division"
	}
	return "unknown"
}

// ParseOp accepts operator symbols (ASCII and the usual typographic forms)
// and short names.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add", "plus":
		return OpAdd, nil
	case "-", "−", "sub", "minus":
		return OpSub, nil
	case "*", "x", "×", "⋅", "mul", "times":
		return OpMul, nil
	case "/", "÷", ":", "div", "quo":
		return OpQuo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Apply evaluates a op b. Only division can fail.
func Apply(op Op, a, b bignum.Int) (bignum.Int, error) {
	switch op {
	case OpAdd:
		return bignum.Add(a, b), nil
	case OpSub:
		return bignum.Sub(a, b), nil
	case OpMul:
		return bignum.Mul(a, b), nil
	case OpQuo:
		return bignum.Quo(a, b)
	}
	return bignum.Int{}, fmt.Errorf("%w: %d", ErrUnknownOp, op)
}
