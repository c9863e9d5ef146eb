package models

import "time"

// CartLine is one aggregated cart entry keyed by menu item ID
// Name and Price are snapshots taken when the item was first added
type CartLine struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line price multiplied by its quantity
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartSummary is the cart as returned to clients
type CartSummary struct {
	Lines []CartLine `json:"lines"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

// AddToCartRequest represents an incoming add-to-order request
type AddToCartRequest struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

// UpdateQuantityRequest represents a quantity stepper change
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Order represents a placed order built from the cart contents
type Order struct {
	ID       string     `json:"id"`
	Lines    []CartLine `json:"lines"`
	Count    int        `json:"count"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}
