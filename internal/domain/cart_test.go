package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Subtotal(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{VariantID: "V1", Price: 10, Quantity: 2},
		{VariantID: "V2", Price: 5, Quantity: 3},
	}}

	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(35)),
		"subtotal = %s", cart.Subtotal())
}

func TestCart_Subtotal_Empty(t *testing.T) {
	assert.True(t, Cart{}.Subtotal().IsZero())
}

func TestCart_Subtotal_FractionalPrices(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{VariantID: "V1", Price: 0.1, Quantity: 3},
	}}

	// 0.1*3 must be exactly 0.3, not a float artifact.
	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("0.3")),
		"subtotal = %s", cart.Subtotal())
}

func TestCart_Find(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{VariantID: "V1"},
		{VariantID: "V2"},
	}}

	assert.Equal(t, 1, cart.Find("V2"))
	assert.Equal(t, -1, cart.Find("V9"))
}

func TestCart_Clone_Independent(t *testing.T) {
	cart := Cart{Items: []CartItem{{VariantID: "V1", Quantity: 2}}}

	clone := cart.Clone()
	clone.Items[0].Quantity = 99

	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestStockLines(t *testing.T) {
	items := []CartItem{
		{ProductID: "P1", VariantID: "V1", SizeID: "S1", Quantity: 1, Name: "shoe", Price: 100},
		{ProductID: "P2", VariantID: "V2", SizeID: "S2", Quantity: 4, Name: "shirt", Price: 50},
	}

	lines := StockLines(items)

	require.Len(t, lines, 2)
	assert.Equal(t, StockLine{ProductID: "P1", VariantID: "V1", SizeID: "S1", Quantity: 1}, lines[0])
	assert.Equal(t, StockLine{ProductID: "P2", VariantID: "V2", SizeID: "S2", Quantity: 4}, lines[1])
}
