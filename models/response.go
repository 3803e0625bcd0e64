package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CartView is the cart page body: items plus the derived total.
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// CheckoutView is the checkout page body.
type CheckoutView struct {
	Items           []CartItem `json:"items"`
	Total           float64    `json:"total"`
	Addresses       []Address  `json:"addresses"`
	SelectedAddress string     `json:"selectedAddress,omitempty"`
}

// HomeView is the storefront landing body.
type HomeView struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}
