package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

func TestDecodeCart_BareArray(t *testing.T) {
	data := []byte(`[{"productId":"P1","variantId":"V1","quantity":2,"price":10}]`)

	cart := DecodeCart(data)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "V1", cart.Items[0].VariantID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestDecodeCart_ItemsEnvelope(t *testing.T) {
	data := []byte(`{"userId":"U1","items":[{"variantId":"V1","quantity":1}]}`)

	cart := DecodeCart(data)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "V1", cart.Items[0].VariantID)
}

func TestDecodeCart_SuccessFlag(t *testing.T) {
	cart := DecodeCart([]byte(`{"success":true}`))

	assert.Empty(t, cart.Items)
}

func TestDecodeCart_UnrecognizedShape(t *testing.T) {
	for _, data := range []string{`"what"`, `42`, `{"foo":"bar"}`, `not json`} {
		assert.Empty(t, DecodeCart([]byte(data)).Items, "input %s", data)
	}
}

// Re-normalizing a decoded cart must be a no-op for every known shape.
func TestDecodeCart_Idempotent(t *testing.T) {
	inputs := [][]byte{
		[]byte(`[{"variantId":"V1","quantity":2,"price":10}]`),
		[]byte(`{"items":[{"variantId":"V1","quantity":2,"price":10}]}`),
		[]byte(`{"success":true}`),
	}

	for _, input := range inputs {
		once := DecodeCart(input)

		encoded, err := json.Marshal(once)
		require.NoError(t, err)
		twice := DecodeCart(encoded)

		assert.Equal(t, once.Items, twice.Items, "input %s", input)
	}
}

func TestDecodeCart_ReturnsDomainCartShape(t *testing.T) {
	data := []byte(`[{"productId":"P1","variantId":"V1","sizeId":"S1","categoryId":"C1","quantity":2,"price":10.5,"name":"runner","imageUrl":"http://img","size":"42","color":"black"}]`)

	cart := DecodeCart(data)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, domain.CartItem{
		ProductID:  "P1",
		VariantID:  "V1",
		SizeID:     "S1",
		CategoryID: "C1",
		Quantity:   2,
		Price:      10.5,
		Name:       "runner",
		ImageURL:   "http://img",
		Size:       "42",
		Color:      "black",
	}, cart.Items[0])
}
