package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/freejob-server/internal/api/http/context"
	"github.com/dtroode/freejob-server/internal/mocks"
	"github.com/dtroode/freejob-server/internal/model"
	"github.com/dtroode/freejob-server/internal/testutil"
)

func TestUser_Me(t *testing.T) {
	userID := uuid.New()
	offerID := uuid.New()
	user := model.User{
		ID:          userID,
		Email:       "alice@example.com",
		UserProfile: model.UserProfile{Name: "Alice", LastName: "Smith", Skills: []string{"go"}},
		Status:      model.UserStatusActive,
		Offers:      []uuid.UUID{offerID},
	}

	svc := mocks.NewUserService(t)
	svc.On("GetUser", mock.Anything, userID).Return(user, nil).Once()
	h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := doRequest(t, newTestEngine(http.MethodGet, "/users", userID, h.Me), http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[userResponse](t, rec)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, []uuid.UUID{offerID}, got.Offers)
	assert.Equal(t, []uuid.UUID{}, got.Applications)
	assert.Equal(t, []string{}, got.Roles)

	rec = doRequest(t, newTestEngine(http.MethodGet, "/users", uuid.Nil, h.Me), http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUser_Me_NotFound(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewUserService(t)
	svc.On("GetUser", mock.Anything, userID).Return(model.User{}, model.ErrNotFound).Once()
	h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	rec := doRequest(t, newTestEngine(http.MethodGet, "/users", userID, h.Me), http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUser_List(t *testing.T) {
	userID := uuid.New()

	svc := mocks.NewUserService(t)
	svc.On("ListUsers", mock.Anything, 0, 0).Return([]model.User{{ID: userID}, {ID: uuid.New()}}, nil).Once()
	svc.On("ListUsers", mock.Anything, 20, 0).Return(nil, assert.AnError).Once()
	h := NewUser(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	engine := newTestEngine(http.MethodGet, "/users/all", userID, h.List)

	rec := doRequest(t, engine, http.MethodGet, "/users/all", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]userResponse](t, rec), 2)

	rec = doRequest(t, engine, http.MethodGet, "/users/all?limit=20", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeBody[errorResponse](t, rec).Error)
}
