package services

import (
	"context"
	"errors"
	"time"

	"buyfish/models"
	"buyfish/shopapi"
)

type CheckoutState int

const (
	StateNoAddress CheckoutState = iota
	StateAddressSelected
	StateSubmitting
	StateRedirected
)

var ErrNoAddressSelected = errors.New("no address selected")

// Checkout composes the cart mirror, a selected address and the derived total
// into one order-creation request. A failed submission returns the machine to
// StateAddressSelected so the user can retry; success ends in StateRedirected
// with the gateway-owned approval location.
type Checkout struct {
	client  *shopapi.Client
	userID  string
	state   CheckoutState
	address models.Address
}

func NewCheckout(client *shopapi.Client, userID string) *Checkout {
	return &Checkout{client: client, userID: userID, state: StateNoAddress}
}

func (co *Checkout) State() CheckoutState {
	return co.state
}

func (co *Checkout) SelectAddress(address models.Address) {
	co.address = address
	co.state = StateAddressSelected
}

// Submit builds the order payload from snapshots of the given items and the
// selected address, then posts it. Without a selected address the submission
// is refused before any network call.
func (co *Checkout) Submit(ctx context.Context, items []models.CartItem, total float64) (string, error) {
	if co.state == StateNoAddress {
		return "", ErrNoAddressSelected
	}
	co.state = StateSubmitting

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	now := time.Now().UTC().Format(time.RFC3339)
	approvalURL, err := co.client.CreateOrder(ctx, models.CreateOrderRequest{
		UserID:          co.userID,
		CartItems:       snapshot,
		AddressInfo:     co.address,
		OrderStatus:     "pending",
		PaymentMethod:   "online",
		TotalAmount:     total,
		OrderDate:       now,
		OrderUpdateDate: now,
		CartID:          co.userID,
	})
	if err != nil {
		co.state = StateAddressSelected
		return "", err
	}

	co.state = StateRedirected
	return approvalURL, nil
}
