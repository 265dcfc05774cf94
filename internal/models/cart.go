package models

import "time"

// CartItem is one line of a user's cart. A user holds at most one line per
// product; adding the same product again increments the quantity.
type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// PopulatedCartItem is a cart line joined with its live product record, the
// shape returned by GET /cart.
type PopulatedCartItem struct {
	CartItem
	Product *Product `json:"product"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type UpdateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type CartResponse struct {
	Message   string     `json:"message"`
	Cart      []CartItem `json:"cart"`
	CartCount int        `json:"cartCount"`
}
