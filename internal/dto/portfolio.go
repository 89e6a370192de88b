package dto

import "finance-tracker/internal/model"

type PortfolioStock struct {
	model.Stock
	TotalValue float64 `json:"total_value"`
}

type PortfolioResponse struct {
	Stocks     []PortfolioStock `json:"stocks"`
	TotalValue float64          `json:"total_value"`
}
