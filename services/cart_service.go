package services

import (
	"context"
	"errors"
	"fmt"

	"buyfish/models"
	"buyfish/shopapi"
)

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

var ErrItemNotFound = errors.New("item not in cart")

// CartMirror is the client-held copy of a user's server-side cart. One mirror
// lives per rendered view: it is built fresh on every request and never shared.
//
// Mutations are optimistic: the local copy changes first, then the backend
// persist runs. A failed persist keeps the optimistic value; the divergence
// lasts until the next full load of the view.
type CartMirror struct {
	client  *shopapi.Client
	userID  string
	items   []models.CartItem
	tracked map[string]int
}

func NewCartMirror(client *shopapi.Client, userID string) *CartMirror {
	return &CartMirror{
		client:  client,
		userID:  userID,
		items:   []models.CartItem{},
		tracked: map[string]int{},
	}
}

// Load replaces the mirror with the backend's authoritative cart. On failure
// the prior mirror state is left untouched and the error goes to the caller.
func (m *CartMirror) Load(ctx context.Context) error {
	items, err := m.client.GetCart(ctx, m.userID)
	if err != nil {
		return err
	}
	m.items = items
	return nil
}

// Items returns a copy of the current mirror contents.
func (m *CartMirror) Items() []models.CartItem {
	items := make([]models.CartItem, len(m.items))
	copy(items, m.items)
	return items
}

// Total is always derived from the items, never stored.
func (m *CartMirror) Total() float64 {
	return models.CartTotal(m.items)
}

// ChangeQuantity applies an increase or decrease to one line. Decrease floors
// at 1; removal is a distinct operation. The new quantity is applied locally
// first and then persisted; a persist failure is returned for logging but the
// mirror keeps the optimistic value.
func (m *CartMirror) ChangeQuantity(ctx context.Context, productID string, direction Direction) (int, error) {
	idx := -1
	for i := range m.items {
		if m.items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrItemNotFound
	}

	quantity := m.items[idx].Quantity
	if direction == DirectionIncrease {
		quantity++
	} else if quantity > 1 {
		quantity--
	}
	m.items[idx].Quantity = quantity

	if err := m.client.UpdateCartItem(ctx, m.userID, productID, quantity); err != nil {
		return quantity, fmt.Errorf("persist quantity change: %w", err)
	}
	return quantity, nil
}

// Remove drops a line from the mirror, then issues the backend delete. Same
// optimistic no-rollback policy as ChangeQuantity.
func (m *CartMirror) Remove(ctx context.Context, productID string) error {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	m.items = kept

	if err := m.client.RemoveCartItem(ctx, m.userID, productID); err != nil {
		return fmt.Errorf("persist removal: %w", err)
	}
	return nil
}

// AddItem persists a new line and records the quantity in the per-product
// tracking map. The session gate keeps unauthenticated callers away from this.
func (m *CartMirror) AddItem(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := m.client.AddToCart(ctx, m.userID, productID, quantity); err != nil {
		return err
	}
	m.tracked[productID] = quantity
	return nil
}

// Tracked returns a copy of the per-product quantity tracking map.
func (m *CartMirror) Tracked() map[string]int {
	tracked := make(map[string]int, len(m.tracked))
	for id, qty := range m.tracked {
		tracked[id] = qty
	}
	return tracked
}
