// Package checkout sequences order placement: stock decrement, order
// creation and the payment-method branch. Steps are strictly ordered within
// one placement; a failed step aborts without compensating completed steps.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/domain"
	"github.com/danghoa77/e-project-mobile/internal/gateway"
)

// Gateway is the slice of the store contract a placement needs.
type Gateway interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
	DecreaseStock(ctx context.Context, items []domain.StockLine) error
	ClearCart(ctx context.Context) error
	CreatePaymentURL(ctx context.Context, provider domain.PaymentProvider, orderID string, amount float64) (string, error)
}

type Outcome string

const (
	// OutcomePlaced is the cash terminal state: the order exists, stock is
	// decremented and the cart is cleared.
	OutcomePlaced Outcome = "ORDER_PLACED"
	// OutcomePendingPayment is the wallet terminal state: the order exists
	// and the provider redirect has been issued.
	OutcomePendingPayment Outcome = "ORDER_PENDING_PAYMENT"
	OutcomeFailed         Outcome = "ORDER_FAILED"
)

// Request is a finalized cart plus the user's checkout choices. The items
// are treated as read-only input; the orchestrator never mutates the cart
// directly and clears it only through the gateway after confirmation.
type Request struct {
	Items   []domain.CartItem
	Address *domain.Address
	Method  domain.PaymentMethod
}

// Result reports the terminal state of one placement. Reason carries the
// short user-facing message on failure; RedirectURL is set only for wallet
// placements.
type Result struct {
	Outcome     Outcome
	Order       domain.Order
	RedirectURL string
	Reason      string
}

type Orchestrator struct {
	gw     Gateway
	logger *zap.Logger
}

func NewOrchestrator(gw Gateway, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{gw: gw, logger: logger}
}

// PlaceOrder runs one checkout attempt to a terminal outcome. Preconditions
// are checked before any network call. Two concurrent placements are not
// mutually excluded; the caller disables its trigger while one is in flight.
func (o *Orchestrator) PlaceOrder(ctx context.Context, req Request) (Result, error) {
	if req.Address == nil {
		return failure(ErrMissingAddress), ErrMissingAddress
	}
	if len(req.Items) == 0 {
		return failure(ErrEmptyCart), ErrEmptyCart
	}

	logger := o.logger.With(
		zap.String("attempt_id", uuid.NewString()),
		zap.String("payment_method", string(req.Method)),
	)

	draft := domain.OrderDraft{
		Items: req.Items,
		ShippingAddress: domain.ShippingAddress{
			Street: req.Address.Street,
			City:   req.Address.City,
		},
		TotalPrice: domain.Cart{Items: req.Items}.Subtotal().InexactFloat64(),
	}
	stock := domain.StockLines(req.Items)

	if provider, ok := req.Method.Provider(); ok {
		return o.placeWallet(ctx, logger, provider, draft, stock)
	}
	if req.Method == domain.PaymentCash {
		return o.placeCash(ctx, logger, draft, stock)
	}

	err := fmt.Errorf("unsupported payment method %q", req.Method)
	return failure(err), err
}

// placeCash creates the order first, then decrements stock and clears the
// cart. An order-creation failure performs no stock mutation.
func (o *Orchestrator) placeCash(ctx context.Context, logger *zap.Logger, draft domain.OrderDraft, stock []domain.StockLine) (Result, error) {
	order, err := o.gw.CreateOrder(ctx, draft)
	if err != nil {
		logger.Warn("order creation failed", zap.Error(err))
		return failure(err), fmt.Errorf("create order: %w", err)
	}

	if err := o.gw.DecreaseStock(ctx, stock); err != nil {
		logger.Warn("stock decrement failed after order creation",
			zap.String("order_id", order.ID), zap.Error(err))
		return failure(err), fmt.Errorf("decrease stock: %w", err)
	}

	if err := o.gw.ClearCart(ctx); err != nil {
		logger.Warn("cart clear failed after order creation",
			zap.String("order_id", order.ID), zap.Error(err))
		return failure(err), fmt.Errorf("clear cart: %w", err)
	}

	logger.Info("order placed", zap.String("order_id", order.ID))
	return Result{Outcome: OutcomePlaced, Order: order}, nil
}

// placeWallet decrements stock before creating the order, then requests the
// provider redirect. If order creation fails the already-decremented stock
// is left as is: there is no compensating restore, only a log line marking
// the inconsistency window.
func (o *Orchestrator) placeWallet(ctx context.Context, logger *zap.Logger, provider domain.PaymentProvider, draft domain.OrderDraft, stock []domain.StockLine) (Result, error) {
	if err := o.gw.DecreaseStock(ctx, stock); err != nil {
		logger.Warn("stock decrement failed", zap.Error(err))
		return failure(err), fmt.Errorf("decrease stock: %w", err)
	}

	order, err := o.gw.CreateOrder(ctx, draft)
	if err != nil {
		logger.Warn("order creation failed with stock already decremented; stock is not restored",
			zap.Error(err))
		return failure(err), fmt.Errorf("create order: %w", err)
	}

	if order.ID == "" || order.TotalPrice == 0 {
		logger.Warn("order creation answered incomplete data")
		return failure(ErrIncompleteOrder), ErrIncompleteOrder
	}

	redirect, err := o.gw.CreatePaymentURL(ctx, provider, order.ID, order.TotalPrice)
	if err != nil {
		logger.Warn("payment url request failed",
			zap.String("order_id", order.ID), zap.Error(err))
		return failure(err), fmt.Errorf("create %s payment url: %w", provider, err)
	}

	logger.Info("order pending payment",
		zap.String("order_id", order.ID), zap.String("provider", provider.String()))
	return Result{Outcome: OutcomePendingPayment, Order: order, RedirectURL: redirect}, nil
}

func failure(err error) Result {
	return Result{Outcome: OutcomeFailed, Reason: reason(err)}
}

// reason converts a step failure to a short user-facing message. Server
// messages pass through; transport errors never do.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrMissingAddress):
		return "Please select a shipping address."
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, ErrIncompleteOrder):
		return "Order data is incomplete."
	}
	if msg := gateway.ServerMessage(err); msg != "" {
		return msg
	}
	return "Failed to place order."
}
