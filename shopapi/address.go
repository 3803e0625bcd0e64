package shopapi

import (
	"context"
	"net/http"

	"buyfish/models"
)

type addressPayload struct {
	models.AddressFields
	UserID string `json:"userId"`
}

// GetAddresses lists a user's saved addresses.
func (c *Client) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	env, err := c.do(ctx, http.MethodGet, "/address/get/"+pathEscape(userID), nil, "")
	if err != nil {
		return nil, err
	}

	addresses := []models.Address{}
	if err := c.decodeData(env, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// AddAddress creates a new address and returns the created record.
func (c *Client) AddAddress(ctx context.Context, userID string, fields models.AddressFields) (*models.Address, error) {
	env, err := c.do(ctx, http.MethodPost, "/address/add", addressPayload{
		AddressFields: fields,
		UserID:        userID,
	}, "")
	if err != nil {
		return nil, err
	}

	var created models.Address
	if err := c.decodeData(env, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAddress(ctx context.Context, userID, addressID string, fields models.AddressFields) error {
	_, err := c.do(ctx, http.MethodPut, "/address/update/"+pathEscape(userID)+"/"+pathEscape(addressID), addressPayload{
		AddressFields: fields,
		UserID:        userID,
	}, "")
	return err
}

func (c *Client) DeleteAddress(ctx context.Context, userID, addressID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/address/delete/"+pathEscape(userID)+"/"+pathEscape(addressID), nil, "")
	return err
}
