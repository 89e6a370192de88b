package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/service"
	"finance-tracker/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeAIRepository struct {
	response string
	err      error
}

func (f *fakeAIRepository) Generate(context.Context, string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAIRepository) ModelName() string { return "fake-model" }

// newTestHandler wires the whole API onto an in-memory database, with the
// generative model stubbed out.
func newTestHandler(t *testing.T, ai repository.AIRepository) *HttpAPIHandler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Stock{},
		&model.ChatHistory{},
		&model.PredictionHistory{},
	))

	log := logger.NewNop()
	uow := repository.NewUnitOfWork(db)
	userRepo := repository.NewUserRepository(db)
	stockRepo := repository.NewStockRepository(db)
	chatRepo := repository.NewChatHistoryRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	services := &service.Service{
		UserService:       service.NewUserService(log, userRepo, uow),
		StockService:      service.NewStockService(log, stockRepo, uow),
		ChatService:       service.NewChatService(log, chatRepo, stockRepo, ai, uow),
		PredictionService: service.NewPredictionService(log, predictionRepo, ai, uow),
	}

	handler := NewHttpAPIHandler(echo.New(), goValidator.New(), services)
	handler.SetupRoutes()
	return handler
}

func doRequest(t *testing.T, h *HttpAPIHandler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	h.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
