package models

// Product mirrors the shop backend's product document.
type Product struct {
	ID       string  `json:"_id" validate:"required"`
	Title    string  `json:"title"`
	Image    string  `json:"image"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category"`
}
