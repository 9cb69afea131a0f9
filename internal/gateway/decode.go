package gateway

import (
	"encoding/json"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

// The backend is known to answer a cart fetch with one of three shapes: a
// bare item array, an object with an "items" array, or a bare success flag
// with no items. DecodeCart collapses them into the canonical Cart once, at
// the boundary, so nothing downstream re-inspects raw payloads. Anything
// unrecognized decodes as an empty cart.
func DecodeCart(data []byte) domain.Cart {
	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err == nil {
		return domain.Cart{Items: items}
	}

	var envelope struct {
		Items []domain.CartItem `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Items != nil {
		return domain.Cart{Items: envelope.Items}
	}

	return domain.Cart{}
}
