package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"finance-tracker/config"
	"finance-tracker/internal/dto"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type MarketDataService interface {
	FetchAll(ctx context.Context) error
}

// marketDataService is a one-shot batch job: pull daily candles for the
// configured symbols, aggregate to monthly OHLC, write one CSV per symbol.
// It has no interaction with the rest of the system.
type marketDataService struct {
	cfg            *config.Config
	log            *logger.Logger
	marketDataRepo repository.MarketDataRepository
}

func NewMarketDataService(cfg *config.Config, log *logger.Logger, marketDataRepo repository.MarketDataRepository) MarketDataService {
	return &marketDataService{
		cfg:            cfg,
		log:            log,
		marketDataRepo: marketDataRepo,
	}
}

// FetchAll fetches all configured symbols concurrently. A failing symbol is
// logged and skipped, it does not abort the rest of the batch.
func (s *marketDataService) FetchAll(ctx context.Context) error {
	if err := os.MkdirAll(s.cfg.MarketData.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MarketData.MaxConcurrency)

	for _, symbol := range s.cfg.MarketData.Symbols {
		symbol := symbol
		g.Go(func() error {
			if err := s.fetchSymbol(ctx, symbol); err != nil {
				s.log.Warn("skipping symbol",
					logger.StringField("symbol", symbol),
					logger.ErrorField(err),
				)
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *marketDataService) fetchSymbol(ctx context.Context, symbol string) error {
	s.log.Info("fetching symbol", logger.StringField("symbol", symbol))

	candles, err := s.marketDataRepo.GetDailyCandles(ctx, symbol, s.cfg.MarketData.HistoryYears)
	if err != nil {
		return err
	}
	if len(candles) == 0 {
		return fmt.Errorf("no data for %s", symbol)
	}

	monthly := AggregateMonthly(candles)
	if len(monthly) == 0 {
		return fmt.Errorf("%s returned no monthly data after aggregation", symbol)
	}

	name := strings.TrimSuffix(symbol, ".NS") + "_monthly.csv"
	path := filepath.Join(s.cfg.MarketData.OutputDir, name)
	if err := writeMonthlyCSV(path, monthly); err != nil {
		return err
	}

	s.log.Info("saved monthly data",
		logger.StringField("symbol", symbol),
		logger.StringField("path", path),
		logger.IntField("months", len(monthly)),
	)
	return nil
}

// AggregateMonthly rolls daily candles up to calendar months: first open,
// max high, min low, last close. Input order does not matter.
func AggregateMonthly(candles []dto.Candle) []dto.MonthlyOHLC {
	sorted := make([]dto.Candle, len(candles))
	copy(sorted, candles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	byMonth := map[time.Time]*dto.MonthlyOHLC{}
	var order []time.Time

	for _, c := range sorted {
		month := time.Date(c.Time.Year(), c.Time.Month(), 1, 0, 0, 0, 0, time.UTC)
		entry, ok := byMonth[month]
		if !ok {
			byMonth[month] = &dto.MonthlyOHLC{
				Month: month,
				Open:  c.Open,
				High:  c.High,
				Low:   c.Low,
				Close: c.Close,
			}
			order = append(order, month)
			continue
		}
		if c.High > entry.High {
			entry.High = c.High
		}
		if c.Low < entry.Low {
			entry.Low = c.Low
		}
		entry.Close = c.Close
	}

	result := make([]dto.MonthlyOHLC, 0, len(order))
	for _, month := range order {
		result = append(result, *byMonth[month])
	}
	return result
}

func writeMonthlyCSV(path string, monthly []dto.MonthlyOHLC) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Date", "Open", "High", "Low", "Close"}); err != nil {
		return err
	}
	for _, m := range monthly {
		record := []string{
			m.Month.Format("2006-01-02"),
			strconv.FormatFloat(m.Open, 'f', -1, 64),
			strconv.FormatFloat(m.High, 'f', -1, 64),
			strconv.FormatFloat(m.Low, 'f', -1, 64),
			strconv.FormatFloat(m.Close, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
