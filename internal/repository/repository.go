package repository

import (
	"finance-tracker/config"
	"finance-tracker/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	UserRepo        UserRepository
	StockRepo       StockRepository
	ChatHistoryRepo ChatHistoryRepository
	PredictionRepo  PredictionRepository
	AIRepo          AIRepository
	MarketDataRepo  MarketDataRepository
	UnitOfWork      UnitOfWork
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	aiRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		UserRepo:        NewUserRepository(db),
		StockRepo:       NewStockRepository(db),
		ChatHistoryRepo: NewChatHistoryRepository(db),
		PredictionRepo:  NewPredictionRepository(db),
		AIRepo:          aiRepo,
		MarketDataRepo:  NewYahooFinanceRepository(cfg, log),
		UnitOfWork:      NewUnitOfWork(db),
	}, nil
}
