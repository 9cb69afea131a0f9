package domain

import "time"

// Address is one of the user's saved shipping addresses. The list is
// server-owned, read-only state; at most one address should be default but
// the client does not enforce that.
type Address struct {
	ID        string `json:"_id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	IsDefault bool   `json:"isDefault"`
}

// ShippingAddress is the subset of an address copied onto an order.
type ShippingAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

// OrderDraft is the payload for creating an order from a cart snapshot.
type OrderDraft struct {
	Items           []CartItem      `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TotalPrice      float64         `json:"totalPrice"`
}

// Order is the server's view of a placed order. Status transitions past
// creation are owned entirely by the remote system.
type Order struct {
	ID              string          `json:"_id"`
	UserID          string          `json:"userId"`
	Items           []CartItem      `json:"items"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          OrderStatus     `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
