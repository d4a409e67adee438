package main

import (
	"errors"
	"fmt"
	"io"

	"bigcalc/internal/bignum"
	"bigcalc/internal/calc"
)

// reportError prints err with a hint for the common input mistakes.
func reportError(out io.Writer, err error) {
	fmt.Fprintf(out, "bigcalc: %v\n", err)
	switch {
	case errors.Is(err, bignum.ErrDivisionByZero):
		fmt.Fprintln(out, "hint: the divisor must be non-zero")
	case errors.Is(err, calc.ErrUnknownOp):
		fmt.Fprintln(out, "hint: operators are + - * / (or add, sub, mul, div)")
	case errors.Is(err, calc.ErrBadOperand), errors.Is(err, calc.ErrBadExpr):
		fmt.Fprintln(out, "hint: write negative operands after --, e.g. bigcalc eval -- -7 / 2")
	}
}
