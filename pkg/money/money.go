// Package money provides exact decimal amounts for prices and order totals.
//
// Amounts never go through binary floating point: repeated additions and
// multiplications are exact, and rounding to cents happens only when an
// Amount is formatted for display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a currency-agnostic decimal amount.
//
// The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{d: d}
}

// FromCents builds an Amount from integer minor units (1/100).
func FromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -2)}
}

func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustParse is Parse, but panics on error.
//
// Use it only for constants.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Times multiplies the amount by a quantity.
func (a Amount) Times(quantity int) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns p% of the amount, exactly.
func (a Amount) Percent(p int64) Amount {
	return Amount{d: a.d.Mul(decimal.New(p, -2))}
}

func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) IsNegative() bool {
	return a.d.IsNegative()
}

// String formats the amount rounded to cents, like "12.30".
func (a Amount) String() string {
	return a.d.StringFixed(2)
}

// Exact formats the amount without rounding.
func (a Amount) Exact() string {
	return a.d.String()
}

func Sum(amounts ...Amount) Amount {
	total := Amount{}
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// implement encoding/json.Marshaler.
//
// Amounts are written as JSON numbers, not strings.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.d.String()), nil
}

// implement encoding/json.Unmarshaler.
//
// Both JSON numbers and numeric strings are accepted.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	a.d = d
	return nil
}

// implement yaml.Marshaler
func (a Amount) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: a.d.String()}, nil
}

// implement yaml.Unmarshaler
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	a.d = d
	return nil
}
