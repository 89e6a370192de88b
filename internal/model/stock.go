package model

import "time"

type Stock struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:200;not null" json:"name"`
	Symbol       string     `gorm:"size:50;not null;index" json:"symbol"`
	BuyPrice     *float64   `json:"buy_price"`
	Quantity     *int       `json:"quantity"`
	PurchaseDate *time.Time `json:"purchase_date"`
	// Nullable owner reference, a stock may be unowned.
	UserID *uint `json:"user_id"`
}

func (Stock) TableName() string {
	return "stocks"
}

// Value is the position's worth, zero when price or quantity is unknown.
func (s Stock) Value() float64 {
	if s.BuyPrice == nil || s.Quantity == nil {
		return 0
	}
	return *s.BuyPrice * float64(*s.Quantity)
}
