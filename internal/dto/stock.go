package dto

import "time"

// StockRequest carries the full mutable state of a stock. UserID is a soft
// owner reference and is not checked against the users table here; the
// storage layer's foreign key has the last word.
type StockRequest struct {
	Name         string     `json:"name" validate:"required,max=200"`
	Symbol       string     `json:"symbol" validate:"required,max=50"`
	BuyPrice     *float64   `json:"buy_price" validate:"omitempty,gte=0"`
	Quantity     *int       `json:"quantity" validate:"omitempty,gte=0"`
	PurchaseDate *time.Time `json:"purchase_date"`
	UserID       *uint      `json:"user_id"`
}
