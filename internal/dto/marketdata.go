package dto

import "time"

// YahooFinanceResponse mirrors the chart API payload, only the parts we read.
type YahooFinanceResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []*float64 `json:"open"`
					High  []*float64 `json:"high"`
					Low   []*float64 `json:"low"`
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"chart"`
}

type Candle struct {
	Time  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// MonthlyOHLC is one month of aggregated daily candles: first open, max high,
// min low, last close.
type MonthlyOHLC struct {
	Month time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}
