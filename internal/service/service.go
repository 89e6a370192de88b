package service

import (
	"finance-tracker/config"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"
)

type Service struct {
	UserService       UserService
	StockService      StockService
	ChatService       ChatService
	PredictionService PredictionService
	MarketDataService MarketDataService
}

func NewService(cfg *config.Config, log *logger.Logger, repo *repository.Repository) *Service {
	return &Service{
		UserService:       NewUserService(log, repo.UserRepo, repo.UnitOfWork),
		StockService:      NewStockService(log, repo.StockRepo, repo.UnitOfWork),
		ChatService:       NewChatService(log, repo.ChatHistoryRepo, repo.StockRepo, repo.AIRepo, repo.UnitOfWork),
		PredictionService: NewPredictionService(log, repo.PredictionRepo, repo.AIRepo, repo.UnitOfWork),
		MarketDataService: NewMarketDataService(cfg, log, repo.MarketDataRepo),
	}
}
