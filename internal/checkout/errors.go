package checkout

import "errors"

var (
	// ErrMissingAddress halts a placement before any network call.
	ErrMissingAddress = errors.New("shipping address is required")
	// ErrEmptyCart halts a placement before any network call.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrIncompleteOrder means order creation answered without an id or a
	// total, so no payment redirect can be requested.
	ErrIncompleteOrder = errors.New("order data is incomplete")
)
