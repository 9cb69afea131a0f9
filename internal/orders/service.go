// Package orders exposes the caller's order history. Order status past
// creation is server-owned; this service only reads it and forwards
// cancellation requests.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

var ErrMissingOrderID = errors.New("order id is required")

type Gateway interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (domain.Order, error)
	CancelOrder(ctx context.Context, orderID string) error
}

type Service struct {
	gw     Gateway
	logger *zap.Logger
}

func NewService(gw Gateway, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, logger: logger}
}

// History returns the caller's orders, newest first.
func (s *Service) History(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.gw.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, ErrMissingOrderID
	}
	order, err := s.gw.GetOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return order, nil
}

// Cancel asks the backend to cancel the order. Whether the order is still
// cancellable is the server's decision; a rejection surfaces as an error.
func (s *Service) Cancel(ctx context.Context, orderID string) error {
	if orderID == "" {
		return ErrMissingOrderID
	}
	if err := s.gw.CancelOrder(ctx, orderID); err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	s.logger.Info("order cancelled", zap.String("order_id", orderID))
	return nil
}
