package bignum

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalText encodes x in decimal.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText decodes a decimal string.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := ParseInt(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON encodes x as a quoted decimal string so that values beyond the
// float64 range survive JSON readers.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string or a bare JSON integer.
func (x *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return x.UnmarshalText(data)
}

// EncodeMsgpack writes x as [negative, [d0, d1, ...]].
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	mag := x.mag()
	if err := enc.EncodeArrayLen(len(mag)); err != nil {
		return err
	}
	for _, d := range mag {
		if err := enc.EncodeUint16(uint16(d)); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads the form written by EncodeMsgpack and validates the
// digits.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("%w: msgpack int: want 2 fields, got %d", ErrInvalidInput, n)
	}
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	count, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if count > MaxDigits {
		return fmt.Errorf("%w: msgpack int: %d digits exceeds %d", ErrInvalidInput, count, MaxDigits)
	}
	digits := make([]Digit, 0, max(count, 0))
	for range count {
		d, err := dec.DecodeUint16()
		if err != nil {
			return err
		}
		digits = append(digits, Digit(d))
	}
	v, err := FromDigits(digits)
	if err != nil {
		return err
	}
	if neg {
		v = Neg(v)
	}
	*x = v
	return nil
}
