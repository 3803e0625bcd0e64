package shopapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"buyfish/models"
)

// CreateOrder submits an order snapshot. On success the backend hands back the
// payment gateway's approval location.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (string, error) {
	if err := c.validate.Struct(&req); err != nil {
		return "", fmt.Errorf("invalid order request: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/order/create", req, "")
	if err != nil {
		return "", err
	}
	if env.ApprovalURL == "" {
		return "", fmt.Errorf("order created but no approval URL in response")
	}
	return env.ApprovalURL, nil
}

// ListOrders fetches all orders for a user.
func (c *Client) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/order/list/"+pathEscape(userID), nil, "")
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := c.decodeData(env, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderDetails fetches a single order; the backend requires the bearer token.
func (c *Client) GetOrderDetails(ctx context.Context, token, orderID string) (*models.Order, error) {
	env, err := c.do(ctx, http.MethodGet, "/order/details/"+pathEscape(orderID), nil, token)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := c.decodeData(env, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type capturePayload struct {
	PaymentID string `json:"paymentId"`
	PayerID   string `json:"payerId"`
	OrderID   string `json:"orderId"`
}

// CaptureResult carries the optional refreshed credentials some capture
// responses include.
type CaptureResult struct {
	Token string
	User  *models.User
}

// CapturePayment confirms a gateway payment for an order.
func (c *Client) CapturePayment(ctx context.Context, token, paymentID, payerID, orderID string) (*CaptureResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/order/capture", capturePayload{
		PaymentID: paymentID,
		PayerID:   payerID,
		OrderID:   orderID,
	}, token)
	if err != nil {
		return nil, err
	}

	result := &CaptureResult{Token: env.Token}
	if len(env.User) > 0 {
		var user models.User
		if err := json.Unmarshal(env.User, &user); err != nil {
			return nil, fmt.Errorf("decode capture user: %w", err)
		}
		result.User = &user
	}
	return result, nil
}
