package models

// Order is an immutable snapshot taken at checkout time. Later cart mutations
// never alter a placed order.
type Order struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"userId"`
	CartItems       []CartItem `json:"cartItems"`
	AddressInfo     Address    `json:"addressInfo"`
	OrderStatus     string     `json:"orderStatus"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentStatus   string     `json:"paymentStatus"`
	TotalAmount     float64    `json:"totalAmount"`
	OrderDate       string     `json:"orderDate"`
	OrderUpdateDate string     `json:"orderUpdateDate"`
}

// CreateOrderRequest is the order-create payload sent to the backend.
type CreateOrderRequest struct {
	UserID          string     `json:"userId" validate:"required"`
	CartItems       []CartItem `json:"cartItems" validate:"required,min=1,dive"`
	AddressInfo     Address    `json:"addressInfo"`
	OrderStatus     string     `json:"orderStatus" validate:"required"`
	PaymentMethod   string     `json:"paymentMethod" validate:"required"`
	TotalAmount     float64    `json:"totalAmount" validate:"gte=0"`
	OrderDate       string     `json:"orderDate" validate:"required"`
	OrderUpdateDate string     `json:"orderUpdateDate" validate:"required"`
	CartID          string     `json:"cartId" validate:"required"`
}
