package repository

import (
	"context"

	"finance-tracker/internal/model"
	"finance-tracker/pkg/utils"

	"gorm.io/gorm"
)

type StockRepository interface {
	Create(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error
	List(ctx context.Context, opts ...utils.DBOption) ([]model.Stock, error)
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Stock, error)
	Update(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type stockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{
		db: db,
	}
}

func (r *stockRepository) Create(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(stock).Error
}

func (r *stockRepository) List(ctx context.Context, opts ...utils.DBOption) ([]model.Stock, error) {
	var stocks []model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if err := tx.Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

func (r *stockRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Stock, error) {
	var stock model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&stock, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}

	return &stock, nil
}

func (r *stockRepository) Update(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Save(stock).Error
}

func (r *stockRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Delete(&model.Stock{}, id).Error
}
