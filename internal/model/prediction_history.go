package model

import (
	"time"

	"gorm.io/datatypes"
)

// PredictionHistory records one model price estimate for a symbol.
// StockSymbol is a soft reference: there is no foreign key to stocks,
// the referenced symbol may not exist in the portfolio at all.
type PredictionHistory struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	StockSymbol    string         `gorm:"size:50;not null;index" json:"stock_symbol"`
	PredictedDate  *time.Time     `json:"predicted_date"`
	PredictedPrice *float64       `json:"predicted_price"`
	ModelUsed      *string        `gorm:"size:100" json:"model_used"`
	Response       datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt      *time.Time     `json:"created_at"`
}

func (PredictionHistory) TableName() string {
	return "prediction_history"
}
