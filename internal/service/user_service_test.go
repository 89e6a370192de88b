package service

import (
	"context"
	"errors"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
	"finance-tracker/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.UserRequest{
		Username: "ayush",
		Email:    utils.ToPointer("ayush@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "ayush", created.Username)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ayush", got.Username)
	require.NotNil(t, got.Email)
	assert.Equal(t, "ayush@example.com", *got.Email)
}

func TestUserService_CreateWithoutEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	created, err := svc.Create(context.Background(), dto.UserRequest{Username: "noemail"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Email)
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.UserRequest{Username: "ayush"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.UserRequest{Username: "ayush"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	// Exactly one row with that username survives.
	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "ayush").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_GetNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserService_List(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		_, err := svc.Create(ctx, dto.UserRequest{Username: name})
		require.NoError(t, err)
	}

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_UpdateReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.UserRequest{
		Username: "before",
		Email:    utils.ToPointer("before@example.com"),
	})
	require.NoError(t, err)

	// Email omitted in the update clears the column, there is no PATCH.
	updated, err := svc.Update(ctx, created.ID, dto.UserRequest{Username: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Username)
	assert.Nil(t, updated.Email)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Username)
	assert.Nil(t, got.Email)
}

func TestUserService_UpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	_, err := svc.Update(context.Background(), 999, dto.UserRequest{Username: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUserService_UpdateUsernameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.UserRequest{Username: "taken"})
	require.NoError(t, err)
	target, err := svc.Create(ctx, dto.UserRequest{Username: "original"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, target.ID, dto.UserRequest{Username: "taken"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	// The failed update left the original username intact.
	got, err := svc.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Username)
}

func TestUserService_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	user, err := svc.Create(ctx, dto.UserRequest{Username: "owner"})
	require.NoError(t, err)

	stockRepo := repository.NewStockRepository(db)
	for _, symbol := range []string{"INFY", "TCS"} {
		require.NoError(t, stockRepo.Create(ctx, &model.Stock{
			Name:   symbol,
			Symbol: symbol,
			UserID: &user.ID,
		}))
	}

	chatRepo := repository.NewChatHistoryRepository(db)
	require.NoError(t, chatRepo.Create(ctx, &model.ChatHistory{
		UserID:  &user.ID,
		Message: "hello",
	}))

	require.NoError(t, svc.Delete(ctx, user.ID))

	var stockCount int64
	require.NoError(t, db.Model(&model.Stock{}).Where("user_id = ?", user.ID).Count(&stockCount).Error)
	assert.Equal(t, int64(0), stockCount)

	chatCount, err := chatRepo.CountByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), chatCount)

	_, err = svc.Get(ctx, user.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserService_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)

	err := svc.Delete(context.Background(), 123)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUserService_DeleteLeavesOtherUsersAlone(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(t, db)
	ctx := context.Background()

	doomed, err := svc.Create(ctx, dto.UserRequest{Username: "doomed"})
	require.NoError(t, err)
	keeper, err := svc.Create(ctx, dto.UserRequest{Username: "keeper"})
	require.NoError(t, err)

	stockRepo := repository.NewStockRepository(db)
	require.NoError(t, stockRepo.Create(ctx, &model.Stock{Name: "Kept", Symbol: "KEEP", UserID: &keeper.ID}))

	require.NoError(t, svc.Delete(ctx, doomed.ID))

	stocks, err := stockRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, "KEEP", stocks[0].Symbol)
}
