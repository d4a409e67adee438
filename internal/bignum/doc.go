// Package bignum implements fixed-width signed integers in base 2^15.
//
// # Representation
//
// An Int holds a sign and at most MaxDigits digits of radix Base, least
// significant digit first. Values are always normalized: there are no most
// significant zero digits and zero is stored with no digits and a positive
// sign. Int is a comparable value type; two Ints are == exactly when they
// represent the same number.
//
// # Precision
//
// The width is fixed. Construction and every operation reduce the magnitude
// modulo Base^MaxDigits, keeping the sign, and never report this as an
// error. Callers that need to detect it must compare against a wider
// computation themselves.
//
// # Operations
//
//   - Add and Sub dispatch on the operand signs and delegate to each other
//     for mixed signs; equal signs run a carry or borrow loop.
//   - Mul is schoolbook multiplication accumulating shifted partial products
//     through Add.
//   - Quo and QuoRem perform normalized long division: both operands are
//     scaled so the divisor's top digit is large, then each quotient digit
//     is estimated from the running remainder and corrected downward by
//     trial multiplication. Division truncates toward zero and fails with
//     ErrDivisionByZero for a zero divisor.
//
// The generic helpers Sum, Difference, Product and Quotient accept native
// integers in place of either operand.
//
// # Rendering
//
// String renders decimal; BaseM renders the digit tuple "(d0, ..., dk)".
// Int also implements text, JSON and msgpack encoding.
package bignum
