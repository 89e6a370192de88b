package dto

import "time"

type PredictionRequest struct {
	StockSymbol string     `json:"stock_symbol" validate:"required,max=50"`
	TargetDate  *time.Time `json:"target_date"`
}

// AIPredictionResult is the JSON shape the model is prompted to answer with.
type AIPredictionResult struct {
	PredictedPrice float64 `json:"predicted_price"`
	PredictedDate  string  `json:"predicted_date"`
	Reasoning      string  `json:"reasoning"`
}
