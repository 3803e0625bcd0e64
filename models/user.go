package models

// User is the shop backend's user record as returned by login/check-auth.
type User struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session is the gateway-held client state persisted across page loads:
// the opaque bearer token plus the user record it belongs to.
type Session struct {
	UserID          string `json:"userId"`
	UserName        string `json:"userName"`
	Email           string `json:"email"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	SelectedAddress string `json:"selectedAddress,omitempty"`
}
