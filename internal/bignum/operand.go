package bignum

// Operand is any value accepted in place of an Int by the generic
// arithmetic helpers.
type Operand interface {
	Int | int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Of converts an operand to an Int.
func Of[T Operand](v T) Int {
	switch x := any(v).(type) {
	case Int:
		return x
	case int:
		return FromInt64(int64(x))
	case int8:
		return FromInt64(int64(x))
	case int16:
		return FromInt64(int64(x))
	case int32:
		return FromInt64(int64(x))
	case int64:
		return FromInt64(x)
	case uint:
		return FromUint64(uint64(x))
	case uint8:
		return FromUint64(uint64(x))
	case uint16:
		return FromUint64(uint64(x))
	case uint32:
		return FromUint64(uint64(x))
	case uint64:
		return FromUint64(x)
	}
	panic("bignum: unreachable operand type")
}

// Sum returns a + b for any mix of Int and native integers.
func Sum[A, B Operand](a A, b B) Int { return Add(Of(a), Of(b)) }

// Difference returns a - b for any mix of Int and native integers.
func Difference[A, B Operand](a A, b B) Int { return Sub(Of(a), Of(b)) }

// Product returns a * b for any mix of Int and native integers.
func Product[A, B Operand](a A, b B) Int { return Mul(Of(a), Of(b)) }

// Quotient returns a / b for any mix of Int and native integers.
func Quotient[A, B Operand](a A, b B) (Int, error) { return Quo(Of(a), Of(b)) }
