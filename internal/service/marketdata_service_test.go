package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-tracker/config"
	"finance-tracker/internal/dto"
	"finance-tracker/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMarketDataRepository struct {
	candles map[string][]dto.Candle
	errs    map[string]error
}

func (f *fakeMarketDataRepository) GetDailyCandles(_ context.Context, symbol string, _ int) ([]dto.Candle, error) {
	if err, ok := f.errs[symbol]; ok {
		return nil, err
	}
	return f.candles[symbol], nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthly(t *testing.T) {
	candles := []dto.Candle{
		// Feed out of order on purpose.
		{Time: day(2024, 1, 15), Open: 102, High: 110, Low: 101, Close: 108},
		{Time: day(2024, 2, 1), Open: 108, High: 112, Low: 107, Close: 111},
		{Time: day(2024, 1, 2), Open: 100, High: 105, Low: 98, Close: 103},
		{Time: day(2024, 1, 31), Open: 107, High: 109, Low: 95, Close: 106},
	}

	monthly := AggregateMonthly(candles)
	require.Len(t, monthly, 2)

	jan := monthly[0]
	assert.Equal(t, day(2024, 1, 1), jan.Month)
	assert.Equal(t, 100.0, jan.Open)  // first trading day's open
	assert.Equal(t, 110.0, jan.High)  // max high
	assert.Equal(t, 95.0, jan.Low)    // min low
	assert.Equal(t, 106.0, jan.Close) // last trading day's close

	feb := monthly[1]
	assert.Equal(t, day(2024, 2, 1), feb.Month)
	assert.Equal(t, 108.0, feb.Open)
	assert.Equal(t, 111.0, feb.Close)
}

func TestAggregateMonthlyEmpty(t *testing.T) {
	assert.Empty(t, AggregateMonthly(nil))
}

func TestMarketDataService_FetchAll(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		MarketData: config.MarketData{
			Symbols:        []string{"INFY.NS", "TCS.NS", "BROKEN.NS"},
			OutputDir:      dir,
			MaxConcurrency: 2,
			HistoryYears:   1,
		},
	}

	repo := &fakeMarketDataRepository{
		candles: map[string][]dto.Candle{
			"INFY.NS": {
				{Time: day(2024, 1, 2), Open: 100, High: 105, Low: 98, Close: 103},
				{Time: day(2024, 2, 2), Open: 103, High: 108, Low: 102, Close: 107},
			},
			"TCS.NS": {
				{Time: day(2024, 1, 2), Open: 3500, High: 3550, Low: 3480, Close: 3520},
			},
		},
		errs: map[string]error{
			"BROKEN.NS": fmt.Errorf("no data"),
		},
	}

	svc := NewMarketDataService(cfg, logger.NewNop(), repo)
	// A failing symbol is skipped, not fatal.
	require.NoError(t, svc.FetchAll(context.Background()))

	infyPath := filepath.Join(dir, "INFY_monthly.csv")
	f, err := os.Open(infyPath)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 months
	assert.Equal(t, []string{"Date", "Open", "High", "Low", "Close"}, records[0])
	assert.Equal(t, "2024-01-01", records[1][0])
	assert.Equal(t, "100", records[1][1])

	_, err = os.Stat(filepath.Join(dir, "TCS_monthly.csv"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "BROKEN_monthly.csv"))
	assert.True(t, os.IsNotExist(err))
}
