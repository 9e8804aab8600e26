package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pet-adoption-api/internal/application/user"
	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/go-pet-adoption-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func withIdentity(r *http.Request, email string) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), middleware.Identity{Email: email}))
}

func TestRegister_Created(t *testing.T) {
	svc := new(mockUserSvc)
	req := domain.RegisterRequest{Username: "ann", Email: "ann@x.io", Password: "s3cret"}
	svc.On("Register", mock.Anything, req).
		Return(&domain.User{UserID: "u1", Username: "ann", Email: "ann@x.io", PasswordHash: "hash"}, nil)

	body, _ := json.Marshal(req)
	rr := httptest.NewRecorder()
	NewUserHandler(svc).Register(rr, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.Equal(t, true, raw["success"])
	u := raw["user"].(map[string]any)
	assert.Equal(t, "ann", u["username"])
	assert.NotContains(t, u, "passwordHash")
	assert.NotContains(t, u, "PasswordHash")
}

func TestRegister_Duplicate(t *testing.T) {
	svc := new(mockUserSvc)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, user.ErrUserExists)

	body := []byte(`{"username":"ann","email":"ann@x.io","password":"s3cret"}`)
	rr := httptest.NewRecorder()
	NewUserHandler(svc).Register(rr, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "User exists. Please login.", decodeMessage(t, rr).Message)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := new(mockUserSvc)
	body := []byte(`{"username":"ann","email":"not-an-email","password":"s3cret"}`)
	rr := httptest.NewRecorder()
	NewUserHandler(svc).Register(rr, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "field 'email' failed 'email'", decodeMessage(t, rr).Message)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestMe(t *testing.T) {
	svc := new(mockUserSvc)
	svc.On("Me", mock.Anything, "ann@x.io").Return(&domain.User{Username: "ann", Email: "ann@x.io"}, nil)

	rr := httptest.NewRecorder()
	NewUserHandler(svc).Me(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/user/me", nil), "ann@x.io"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"username":"ann","email":"ann@x.io"}`, rr.Body.String())
}

func TestMe_DeletedUser(t *testing.T) {
	svc := new(mockUserSvc)
	svc.On("Me", mock.Anything, "gone@x.io").Return(nil, user.ErrUserNotFound)

	rr := httptest.NewRecorder()
	NewUserHandler(svc).Me(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/user/me", nil), "gone@x.io"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", decodeMessage(t, rr).Message)
}

func TestMe_StoreFailure(t *testing.T) {
	svc := new(mockUserSvc)
	svc.On("Me", mock.Anything, "ann@x.io").Return(nil, errors.New("timeout"))

	rr := httptest.NewRecorder()
	NewUserHandler(svc).Me(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/user/me", nil), "ann@x.io"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestMe_NoIdentity(t *testing.T) {
	rr := httptest.NewRecorder()
	NewUserHandler(new(mockUserSvc)).Me(rr, httptest.NewRequest(http.MethodGet, "/user/me", nil).WithContext(context.Background()))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
