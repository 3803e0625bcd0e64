package models

type RegisterRequest struct {
	UserName string `json:"userName" form:"userName" binding:"required,min=3"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId" form:"productId" binding:"required"`
	Quantity  int    `json:"quantity" form:"quantity" binding:"omitempty,gte=1"`
}

type ChangeQuantityRequest struct {
	Direction string `json:"direction" form:"direction" binding:"required,oneof=increase decrease"`
}

type SaveAddressRequest struct {
	AddressFields
	// Editing carries the id of the address being edited; empty means create.
	Editing string `json:"editing" form:"editing"`
}

type SelectAddressRequest struct {
	AddressID string `json:"addressId" form:"addressId" binding:"required"`
}
