package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"
	"finance-tracker/pkg/utils"
)

type ChatService interface {
	Ask(ctx context.Context, req dto.ChatRequest) (*model.ChatHistory, error)
	List(ctx context.Context, userID *uint) ([]model.ChatHistory, error)
}

type chatService struct {
	log       *logger.Logger
	chatRepo  repository.ChatHistoryRepository
	stockRepo repository.StockRepository
	aiRepo    repository.AIRepository
	uow       repository.UnitOfWork
}

func NewChatService(
	log *logger.Logger,
	chatRepo repository.ChatHistoryRepository,
	stockRepo repository.StockRepository,
	aiRepo repository.AIRepository,
	uow repository.UnitOfWork,
) ChatService {
	return &chatService{
		log:       log,
		chatRepo:  chatRepo,
		stockRepo: stockRepo,
		aiRepo:    aiRepo,
		uow:       uow,
	}
}

// Ask sends the message to the model together with the user's holdings as
// context, then persists the exchange. An absent user id is fine, the chat
// just gets no portfolio context; a dangling one is rejected by the foreign
// key and surfaces as ErrConflict.
func (s *chatService) Ask(ctx context.Context, req dto.ChatRequest) (*model.ChatHistory, error) {
	prompt, err := s.buildPrompt(ctx, req)
	if err != nil {
		return nil, err
	}

	answer, err := s.aiRepo.Generate(ctx, prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "chat model call failed", logger.ErrorField(err))
		return nil, fmt.Errorf("chat model: %w", ErrUpstream)
	}

	chat := &model.ChatHistory{
		UserID:    req.UserID,
		Message:   req.Message,
		Response:  &answer,
		Timestamp: utils.ToPointer(time.Now().UTC()),
	}

	err = s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.chatRepo.Create(ctx, chat, opts...); err != nil {
			if repository.IsForeignKeyViolation(err) {
				return fmt.Errorf("user %v does not exist: %w", req.UserID, ErrConflict)
			}
			return fmt.Errorf("failed to store chat history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return chat, nil
}

func (s *chatService) List(ctx context.Context, userID *uint) ([]model.ChatHistory, error) {
	chats, err := s.chatRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	return chats, nil
}

func (s *chatService) buildPrompt(ctx context.Context, req dto.ChatRequest) (string, error) {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Answer briefly.\n")

	if req.UserID != nil {
		stocks, err := s.stockRepo.List(ctx, utils.WithWhere("user_id = ?", *req.UserID))
		if err != nil {
			return "", fmt.Errorf("failed to load holdings: %w", err)
		}
		if len(stocks) > 0 {
			b.WriteString("The user's current holdings:\n")
			for _, stock := range stocks {
				b.WriteString(fmt.Sprintf("- %s (%s)", stock.Name, stock.Symbol))
				if stock.Quantity != nil && stock.BuyPrice != nil {
					b.WriteString(fmt.Sprintf(": %d bought at %.2f", *stock.Quantity, *stock.BuyPrice))
				}
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(req.Message)
	return b.String(), nil
}
