// Package cart owns the local mirror of the remote cart and applies
// user-initiated mutations optimistically: the snapshot changes first, the
// remote call follows, and a remote failure restores the pre-mutation
// snapshot.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/danghoa77/e-project-mobile/internal/domain"
	"github.com/danghoa77/e-project-mobile/internal/gateway"
)

// Manager maintains the cart snapshot for one user session. The mutex guards
// the snapshot only; it is not held across remote calls, so two in-flight
// edits to the same variant race and the last response to arrive wins. That
// matches the backend's own last-write-wins semantics for a single user; a
// stale rollback clobbering a newer edit is an accepted risk rather than
// something a fencing queue hides.
type Manager struct {
	gw     gateway.CartGateway
	logger *zap.Logger

	mu    sync.Mutex
	cart  domain.Cart
	loads singleflight.Group // collapses concurrent Load calls
}

func NewManager(gw gateway.CartGateway, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{gw: gw, logger: logger}
}

// Load fetches the authoritative cart and replaces the local snapshot
// unconditionally, discarding any pending optimistic edit (last-fetch-wins).
func (m *Manager) Load(ctx context.Context) (domain.Cart, error) {
	v, err, _ := m.loads.Do("cart", func() (interface{}, error) {
		fetched, err := m.gw.GetCart(ctx)
		if err != nil {
			return nil, fmt.Errorf("load cart: %w", err)
		}

		m.mu.Lock()
		m.cart = fetched
		m.mu.Unlock()

		m.logger.Debug("cart loaded", zap.Int("items", len(fetched.Items)))
		return fetched, nil
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return v.(domain.Cart), nil
}

// Snapshot returns a copy of the current local cart.
func (m *Manager) Snapshot() domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Clone()
}

// Subtotal is the subtotal of the current local cart.
func (m *Manager) Subtotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Subtotal()
}

// AddItem adds a variant to the cart, aggregating quantity when the variant
// already has a line item.
func (m *Manager) AddItem(ctx context.Context, item domain.CartItem) error {
	m.mu.Lock()
	prev := m.cart.Clone()
	if i := m.cart.Find(item.VariantID); i >= 0 {
		m.cart.Items[i].Quantity += item.Quantity
	} else {
		m.cart.Items = append(m.cart.Items, item)
	}
	m.mu.Unlock()

	if err := m.gw.AddItem(ctx, item); err != nil {
		m.restore(prev)
		return fmt.Errorf("add item: %w", err)
	}
	return nil
}

// SetQuantity sets the quantity of the variant's line item. A quantity below
// one removes the item instead; a zero-quantity line is never retained.
func (m *Manager) SetQuantity(ctx context.Context, productID, variantID, sizeID string, quantity int) error {
	if quantity < 1 {
		return m.RemoveItem(ctx, productID, variantID, sizeID)
	}

	m.mu.Lock()
	prev := m.cart.Clone()
	if i := m.cart.Find(variantID); i >= 0 {
		m.cart.Items[i].Quantity = quantity
	}
	m.mu.Unlock()

	if err := m.gw.UpdateQuantity(ctx, productID, variantID, sizeID, quantity); err != nil {
		m.restore(prev)
		return fmt.Errorf("update quantity: %w", err)
	}
	return nil
}

// RemoveItem drops the variant's line item.
func (m *Manager) RemoveItem(ctx context.Context, productID, variantID, sizeID string) error {
	m.mu.Lock()
	prev := m.cart.Clone()
	kept := m.cart.Items[:0:0]
	for _, item := range m.cart.Items {
		if item.VariantID != variantID {
			kept = append(kept, item)
		}
	}
	m.cart.Items = kept
	m.mu.Unlock()

	if err := m.gw.RemoveItem(ctx, productID, variantID, sizeID); err != nil {
		m.restore(prev)
		return fmt.Errorf("remove item: %w", err)
	}
	return nil
}

// Clear deletes the remote cart. The local snapshot is emptied only after
// the remote call succeeds; clearing runs post-order-confirmation, not in
// the optimistic hot path.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.gw.ClearCart(ctx); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	m.mu.Lock()
	m.cart = domain.Cart{}
	m.mu.Unlock()
	return nil
}

func (m *Manager) restore(prev domain.Cart) {
	m.mu.Lock()
	m.cart = prev
	m.mu.Unlock()
	m.logger.Debug("cart mutation rolled back", zap.Int("items", len(prev.Items)))
}
