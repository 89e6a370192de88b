package repository

import (
	"context"

	"finance-tracker/internal/model"
	"finance-tracker/pkg/utils"

	"gorm.io/gorm"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, chat *model.ChatHistory, opts ...utils.DBOption) error
	List(ctx context.Context, userID *uint, opts ...utils.DBOption) ([]model.ChatHistory, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

type chatHistoryRepository struct {
	db *gorm.DB
}

func NewChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &chatHistoryRepository{
		db: db,
	}
}

func (r *chatHistoryRepository) Create(ctx context.Context, chat *model.ChatHistory, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(chat).Error
}

func (r *chatHistoryRepository) List(ctx context.Context, userID *uint, opts ...utils.DBOption) ([]model.ChatHistory, error) {
	var chats []model.ChatHistory
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}
	if err := tx.Order("id DESC").Find(&chats).Error; err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *chatHistoryRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChatHistory{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
