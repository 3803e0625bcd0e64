package shopapi

import (
	"context"
	"net/http"

	"buyfish/models"
)

type cartPayload struct {
	Items []models.CartItem `json:"items"`
}

type cartMutation struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// GetCart fetches the authoritative cart for a user.
func (c *Client) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	env, err := c.do(ctx, http.MethodGet, "/cart/get/"+pathEscape(userID), nil, "")
	if err != nil {
		return nil, err
	}

	var payload cartPayload
	if err := c.decodeData(env, &payload); err != nil {
		return nil, err
	}
	if payload.Items == nil {
		payload.Items = []models.CartItem{}
	}
	return payload.Items, nil
}

func (c *Client) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	_, err := c.do(ctx, http.MethodPost, "/cart/add", cartMutation{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, "")
	return err
}

func (c *Client) UpdateCartItem(ctx context.Context, userID, productID string, quantity int) error {
	_, err := c.do(ctx, http.MethodPut, "/cart/update-cart", cartMutation{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}, "")
	return err
}

func (c *Client) RemoveCartItem(ctx context.Context, userID, productID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/cart/"+pathEscape(userID)+"/"+pathEscape(productID), nil, "")
	return err
}
