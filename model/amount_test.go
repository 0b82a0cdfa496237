package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalAsNumber(t *testing.T) {
	data, err := json.Marshal(MustAmount("1234.56"))
	require.NoError(t, err)
	assert.Equal(t, "1234.56", string(data))
}

func TestAmount_UnmarshalNumberOrString(t *testing.T) {
	var fromNumber, fromString Amount
	require.NoError(t, json.Unmarshal([]byte(`19.99`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"19.99"`), &fromString))

	assert.True(t, fromNumber.Equal(decimal.RequireFromString("19.99")))
	assert.True(t, fromString.Equal(fromNumber.Decimal))
}

func TestAmountFromString_Invalid(t *testing.T) {
	_, err := AmountFromString("twelve")
	assert.Error(t, err)
}

func TestAmount_OrZeroNil(t *testing.T) {
	var a *Amount
	assert.True(t, a.OrZero().IsZero())
}
