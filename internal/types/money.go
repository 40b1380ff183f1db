package types

import "github.com/shopspring/decimal"

// Money is a decimal amount. The backend reads and writes monetary values as JSON numbers, so Money is
// encoded without quotes; both numbers and strings are accepted when decoding.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func MoneyFromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

// ParseMoney parses an amount such as "1299.50"
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}
