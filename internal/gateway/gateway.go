// Package gateway is the typed contract of the remote store backend plus its
// HTTP implementation. The backend is the system of record for carts,
// orders, stock and payments; everything here is request/response plumbing
// with no local state beyond the circuit breaker.
package gateway

import (
	"context"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

// CartGateway covers the remote cart endpoints.
type CartGateway interface {
	GetCart(ctx context.Context) (domain.Cart, error)
	AddItem(ctx context.Context, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, productID, variantID, sizeID string, quantity int) error
	RemoveItem(ctx context.Context, productID, variantID, sizeID string) error
	ClearCart(ctx context.Context) error
}

// OrderGateway covers order creation and history.
type OrderGateway interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
}

// StockGateway decrements server-side inventory for an order's line items.
type StockGateway interface {
	DecreaseStock(ctx context.Context, items []domain.StockLine) error
}

// PaymentGateway creates provider redirect URLs and verifies provider
// return callbacks.
type PaymentGateway interface {
	CreatePaymentURL(ctx context.Context, provider domain.PaymentProvider, orderID string, amount float64) (string, error)
	VerifyPaymentReturn(ctx context.Context, provider domain.PaymentProvider, orderID, code string) error
}

// UserGateway exposes the caller's profile data needed at checkout.
type UserGateway interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
}

// CatalogGateway covers product browsing.
type CatalogGateway interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

// StoreGateway is the full remote store contract.
type StoreGateway interface {
	CartGateway
	OrderGateway
	StockGateway
	PaymentGateway
	UserGateway
	CatalogGateway
}
