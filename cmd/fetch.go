package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/config"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/pkg/logger"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch historical market data for the configured symbols and write monthly CSVs",
	Run:   Fetch,
}

// Fetch is a standalone batch job, it does not touch the database.
func Fetch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	marketDataRepo := repository.NewYahooFinanceRepository(cfg, appLog)
	marketDataService := service.NewMarketDataService(cfg, appLog, marketDataRepo)

	if err := marketDataService.FetchAll(ctx); err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	appLog.Info("Done")
}
