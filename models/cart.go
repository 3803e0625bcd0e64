package models

// CartItem is one line of a user's server-side cart. Unique by ProductID.
type CartItem struct {
	ProductID string  `json:"productId" validate:"required"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// CartTotal derives the total from the items. The total is never stored;
// every view that shows it runs the same sum.
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
