package services

import (
	"context"

	"buyfish/models"
	"buyfish/shopapi"
)

type ProductService struct {
	client *shopapi.Client
}

func NewProductService(client *shopapi.Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.client.GetProducts(ctx)
}

func (s *ProductService) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	return s.client.Search(ctx, keyword)
}

// Categories derives the unique category list from the products, in first-seen
// order. The backend has no category endpoint; the storefront builds its own.
func Categories(products []models.Product) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// FilterByCategories keeps the products whose category is in selected. An
// empty selection means no filter.
func FilterByCategories(products []models.Product, selected []string) []models.Product {
	if len(selected) == 0 {
		return products
	}
	wanted := map[string]bool{}
	for _, c := range selected {
		wanted[c] = true
	}
	filtered := []models.Product{}
	for _, p := range products {
		if wanted[p.Category] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
