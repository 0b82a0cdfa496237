package model

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value. It is encoded as a bare JSON number so the
// web client can read it, but it never passes through a float.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) *Amount {
	return &Amount{Decimal: d}
}

// AmountFromString parses s as a decimal amount.
func AmountFromString(s string) (*Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return NewAmount(d), nil
}

// MustAmount is AmountFromString for constants. It panics on a malformed value.
func MustAmount(s string) *Amount {
	return NewAmount(decimal.RequireFromString(s))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Schema describes Amount as a plain number in OpenAPI documents.
func (Amount) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber, Description: "Monetary amount with two decimal places"}
}

// UnmarshalJSON accepts both 12.5 and "12.5".
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

// OrZero returns the decimal behind a, or zero when a is nil.
func (a *Amount) OrZero() decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.Decimal
}
