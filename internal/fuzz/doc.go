// Package fuzztests houses Go fuzz harnesses for the bignum package. They
// feed arbitrary text to the parser and arbitrary digit sequences to the
// arithmetic, checking representation invariants and agreement with
// math/big reduced to the fixed width.
//
// Run one with: go test ./internal/fuzz -run=^$ -fuzz=FuzzArithmetic
package fuzztests
