package service

import (
	"context"
	"fmt"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"
	"finance-tracker/pkg/utils"
)

type StockService interface {
	Create(ctx context.Context, req dto.StockRequest) (*model.Stock, error)
	List(ctx context.Context) ([]model.Stock, error)
	Get(ctx context.Context, id uint) (*model.Stock, error)
	Update(ctx context.Context, id uint, req dto.StockRequest) (*model.Stock, error)
	Delete(ctx context.Context, id uint) error
	Portfolio(ctx context.Context) (*dto.PortfolioResponse, error)
}

type stockService struct {
	log       *logger.Logger
	stockRepo repository.StockRepository
	uow       repository.UnitOfWork
}

func NewStockService(log *logger.Logger, stockRepo repository.StockRepository, uow repository.UnitOfWork) StockService {
	return &stockService{
		log:       log,
		stockRepo: stockRepo,
		uow:       uow,
	}
}

// Create inserts unconditionally: no symbol uniqueness, no check that
// user_id names an existing user. If the schema enforces the foreign key the
// violation surfaces as ErrConflict; the service does not paper over it.
func (s *stockService) Create(ctx context.Context, req dto.StockRequest) (*model.Stock, error) {
	stock := &model.Stock{
		Name:         req.Name,
		Symbol:       req.Symbol,
		BuyPrice:     req.BuyPrice,
		Quantity:     req.Quantity,
		PurchaseDate: req.PurchaseDate,
		UserID:       req.UserID,
	}

	err := s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.stockRepo.Create(ctx, stock, opts...); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return fmt.Errorf("user %v does not exist: %w", req.UserID, ErrConflict)
			}
			return fmt.Errorf("failed to create stock: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "stock created",
		logger.IntField("id", int(stock.ID)),
		logger.StringField("symbol", stock.Symbol),
	)
	return stock, nil
}

func (s *stockService) List(ctx context.Context) ([]model.Stock, error) {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}
	return stocks, nil
}

func (s *stockService) Get(ctx context.Context, id uint) (*model.Stock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stock: %w", err)
	}
	if stock == nil {
		return nil, fmt.Errorf("stock %d: %w", id, ErrNotFound)
	}
	return stock, nil
}

func (s *stockService) Update(ctx context.Context, id uint, req dto.StockRequest) (*model.Stock, error) {
	var updated *model.Stock

	err := s.uow.Run(func(opts ...utils.DBOption) error {
		stock, err := s.stockRepo.GetByID(ctx, id, opts...)
		if err != nil {
			return fmt.Errorf("failed to get stock: %w", err)
		}
		if stock == nil {
			return fmt.Errorf("stock %d: %w", id, ErrNotFound)
		}

		stock.Name = req.Name
		stock.Symbol = req.Symbol
		stock.BuyPrice = req.BuyPrice
		stock.Quantity = req.Quantity
		stock.PurchaseDate = req.PurchaseDate
		stock.UserID = req.UserID

		if err := s.stockRepo.Update(ctx, stock, opts...); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return fmt.Errorf("user %v does not exist: %w", req.UserID, ErrConflict)
			}
			return fmt.Errorf("failed to update stock: %w", err)
		}

		updated = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes one stock. No cascade effects of its own.
func (s *stockService) Delete(ctx context.Context, id uint) error {
	return s.uow.Run(func(opts ...utils.DBOption) error {
		stock, err := s.stockRepo.GetByID(ctx, id, opts...)
		if err != nil {
			return fmt.Errorf("failed to get stock: %w", err)
		}
		if stock == nil {
			return fmt.Errorf("stock %d: %w", id, ErrNotFound)
		}

		if err := s.stockRepo.Delete(ctx, id, opts...); err != nil {
			return fmt.Errorf("failed to delete stock: %w", err)
		}
		return nil
	})
}

// Portfolio returns every stock with its position value and the grand total.
// Positions with an unknown price or quantity count as zero.
func (s *stockService) Portfolio(ctx context.Context) (*dto.PortfolioResponse, error) {
	stocks, err := s.stockRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	resp := &dto.PortfolioResponse{
		Stocks: make([]dto.PortfolioStock, 0, len(stocks)),
	}
	for _, stock := range stocks {
		value := stock.Value()
		resp.Stocks = append(resp.Stocks, dto.PortfolioStock{
			Stock:      stock,
			TotalValue: value,
		})
		resp.TotalValue += value
	}

	return resp, nil
}
