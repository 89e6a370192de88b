package repository

import (
	"context"

	"finance-tracker/internal/model"
	"finance-tracker/pkg/utils"

	"gorm.io/gorm"
)

type PredictionRepository interface {
	Create(ctx context.Context, prediction *model.PredictionHistory, opts ...utils.DBOption) error
	ListBySymbol(ctx context.Context, symbol string, opts ...utils.DBOption) ([]model.PredictionHistory, error)
}

type predictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{
		db: db,
	}
}

func (r *predictionRepository) Create(ctx context.Context, prediction *model.PredictionHistory, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(prediction).Error
}

func (r *predictionRepository) ListBySymbol(ctx context.Context, symbol string, opts ...utils.DBOption) ([]model.PredictionHistory, error) {
	var predictions []model.PredictionHistory
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Where("stock_symbol = ?", symbol).Order("id DESC").Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
