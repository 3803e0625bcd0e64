package shopapi

import (
	"context"
	"net/http"

	"buyfish/models"
)

// GetProducts fetches the full product catalogue.
func (c *Client) GetProducts(ctx context.Context) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/products/get", nil, "")
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := c.decodeData(env, &products); err != nil {
		return nil, err
	}
	for i := range products {
		if err := c.validate.Struct(&products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// Search returns the products matching a keyword.
func (c *Client) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/search/"+pathEscape(keyword), nil, "")
	if err != nil {
		return nil, err
	}

	products := []models.Product{}
	if err := c.decodeData(env, &products); err != nil {
		return nil, err
	}
	return products, nil
}
