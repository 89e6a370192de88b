package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"
	"finance-tracker/pkg/utils"
)

type PredictionService interface {
	Predict(ctx context.Context, req dto.PredictionRequest) (*model.PredictionHistory, error)
	ListBySymbol(ctx context.Context, symbol string) ([]model.PredictionHistory, error)
}

type predictionService struct {
	log            *logger.Logger
	predictionRepo repository.PredictionRepository
	aiRepo         repository.AIRepository
	uow            repository.UnitOfWork
}

func NewPredictionService(
	log *logger.Logger,
	predictionRepo repository.PredictionRepository,
	aiRepo repository.AIRepository,
	uow repository.UnitOfWork,
) PredictionService {
	return &predictionService{
		log:            log,
		predictionRepo: predictionRepo,
		aiRepo:         aiRepo,
		uow:            uow,
	}
}

// Predict asks the model for a price estimate and records the outcome. The
// symbol is a soft reference, it does not have to exist in the stocks table.
func (s *predictionService) Predict(ctx context.Context, req dto.PredictionRequest) (*model.PredictionHistory, error) {
	targetDate := time.Now().UTC().AddDate(0, 1, 0)
	if req.TargetDate != nil {
		targetDate = *req.TargetDate
	}

	raw, err := s.aiRepo.Generate(ctx, s.buildPrompt(req.StockSymbol, targetDate))
	if err != nil {
		s.log.ErrorContext(ctx, "prediction model call failed",
			logger.StringField("symbol", req.StockSymbol),
			logger.ErrorField(err),
		)
		return nil, fmt.Errorf("prediction model: %w", ErrUpstream)
	}

	result, err := parsePredictionResult(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "unparseable prediction response",
			logger.StringField("symbol", req.StockSymbol),
			logger.ErrorField(err),
		)
		return nil, fmt.Errorf("prediction response: %w", ErrUpstream)
	}

	predictedDate := targetDate
	if parsed, err := time.Parse("2006-01-02", result.PredictedDate); err == nil {
		predictedDate = parsed
	}

	rawJSON, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction result: %w", err)
	}

	prediction := &model.PredictionHistory{
		StockSymbol:    req.StockSymbol,
		PredictedDate:  &predictedDate,
		PredictedPrice: &result.PredictedPrice,
		ModelUsed:      utils.ToPointer(s.aiRepo.ModelName()),
		Response:       rawJSON,
		CreatedAt:      utils.ToPointer(time.Now().UTC()),
	}

	err = s.uow.Run(func(opts ...utils.DBOption) error {
		return s.predictionRepo.Create(ctx, prediction, opts...)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	return prediction, nil
}

func (s *predictionService) ListBySymbol(ctx context.Context, symbol string) ([]model.PredictionHistory, error) {
	predictions, err := s.predictionRepo.ListBySymbol(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

func (s *predictionService) buildPrompt(symbol string, targetDate time.Time) string {
	return fmt.Sprintf(
		"Estimate the closing price of the stock %s on %s. "+
			"Answer with a single JSON object and nothing else, "+
			`using the shape {"predicted_price": <number>, "predicted_date": "YYYY-MM-DD", "reasoning": "<short text>"}.`,
		symbol, targetDate.Format("2006-01-02"),
	)
}

// parsePredictionResult tolerates markdown code fences around the JSON, which
// generative models like to add despite instructions.
func parsePredictionResult(raw string) (*dto.AIPredictionResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result dto.AIPredictionResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
