package service

import (
	"context"
	"testing"

	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database with foreign keys
// enforced and driver errors translated to gorm sentinels, matching the
// behavior of the production Postgres setup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so the in-memory database is shared by every session.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Stock{},
		&model.ChatHistory{},
		&model.PredictionHistory{},
	))

	return db
}

type fakeAIRepository struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeAIRepository) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAIRepository) ModelName() string {
	return "fake-model"
}

func newUserService(t *testing.T, db *gorm.DB) UserService {
	t.Helper()
	return NewUserService(logger.NewNop(), repository.NewUserRepository(db), repository.NewUnitOfWork(db))
}

func newStockService(t *testing.T, db *gorm.DB) StockService {
	t.Helper()
	return NewStockService(logger.NewNop(), repository.NewStockRepository(db), repository.NewUnitOfWork(db))
}
