package model

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Money is a currency amount carried as a plain JSON number with two
// decimal places on the wire.
//
// Unmarshalling is deliberately lenient: JSON numbers and numeric strings
// parse, anything else yields a flagged invalid value instead of a decode
// error. Whether invalid input is coerced to zero or rejected is a
// service-level decision, so the decoder must not make it.
type Money struct {
	dec     decimal.Decimal
	invalid bool
}

// NewMoney wraps a decimal amount.
func NewMoney(d decimal.Decimal) Money {
	return Money{dec: d}
}

// MoneyFromString parses a decimal string into a Money value.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{dec: d}, nil
}

// MustMoney parses s and panics on failure. For fee constants and tests.
func MustMoney(s string) Money {
	return Money{dec: decimal.RequireFromString(s)}
}

// Decimal exposes the underlying amount.
func (m Money) Decimal() decimal.Decimal { return m.dec }

// Invalid reports whether the value came from unparseable input.
func (m Money) Invalid() bool { return m.invalid }

func (m Money) IsNegative() bool   { return m.dec.IsNegative() }
func (m Money) IsZero() bool       { return m.dec.IsZero() }
func (m Money) Equal(n Money) bool { return m.dec.Equal(n.dec) }

func (m Money) Add(n Money) Money { return Money{dec: m.dec.Add(n.dec)} }
func (m Money) Sub(n Money) Money { return Money{dec: m.dec.Sub(n.dec)} }

// MulInt multiplies the amount by a quantity.
func (m Money) MulInt(q int) Money {
	return Money{dec: m.dec.Mul(decimal.NewFromInt(int64(q)))}
}

// DivInt divides the amount by a count.
func (m Money) DivInt(n int) Money {
	return Money{dec: m.dec.Div(decimal.NewFromInt(int64(n)))}
}

// Round2 rounds to two decimal places, the precision every persisted
// amount carries.
func (m Money) Round2() Money { return Money{dec: m.dec.Round(2)} }

func (m Money) String() string { return m.dec.StringFixed(2) }

// MarshalJSON emits a bare number with two decimal places.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.dec.StringFixed(2)), nil
}

// UnmarshalJSON accepts numbers and numeric strings. Invalid input marks
// the value rather than failing the decode; see the type comment.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	d, err := decimal.NewFromString(string(bytes.TrimSpace(data)))
	if err != nil {
		*m = Money{invalid: true}
		return nil
	}
	*m = Money{dec: d}
	return nil
}
