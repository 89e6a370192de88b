package http

import (
	"net/http"
	"testing"

	"finance-tracker/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	rec := doRequest(t, h, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "ayush",
		"email":    "ayush@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user model.User
	decodeBody(t, rec, &user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "ayush", user.Username)
	require.NotNil(t, user.Email)
	assert.Equal(t, "ayush@example.com", *user.Email)

	// The same POST again collides on the username.
	rec = doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "ayush",
		"email":    "ayush@example.com",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreateUserValidation(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	// Missing username is rejected before the service layer.
	rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{
		"email": "nobody@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "someone",
		"email":    "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{"username": "alice"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/users/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsers(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	for _, name := range []string{"alice", "bob"} {
		rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{"username": name})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, h, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []model.User
	decodeBody(t, rec, &users)
	assert.Len(t, users, 2)
}

func TestUpdateUser(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{"username": "old"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{"username": "taken"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/api/users/1", map[string]interface{}{"username": "new"})
	require.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "new", user.Username)

	rec = doRequest(t, h, http.MethodPut, "/api/users/1", map[string]interface{}{"username": "taken"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, h, http.MethodPut, "/api/users/77", map[string]interface{}{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	h := newTestHandler(t, &fakeAIRepository{})

	rec := doRequest(t, h, http.MethodPost, "/api/users", map[string]interface{}{"username": "gone"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, h, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, h, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
