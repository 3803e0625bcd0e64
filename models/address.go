package models

// Address is a saved delivery address owned by a user. Its CRUD lifecycle is
// independent of the cart.
type Address struct {
	ID      string `json:"_id"`
	UserID  string `json:"userId"`
	Address string `json:"address"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// AddressFields is the mutable part of an address, shared by the create and
// update variants.
type AddressFields struct {
	Address string `json:"address" form:"address" binding:"required"`
	City    string `json:"city" form:"city" binding:"required"`
	Pincode string `json:"pincode" form:"pincode" binding:"required"`
	Phone   string `json:"phone" form:"phone" binding:"required"`
	Notes   string `json:"notes" form:"notes"`
}
