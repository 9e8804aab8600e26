package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) MessageEnvelope {
	t.Helper()
	var env MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.NewError(domain.ErrUnauthorized, "Password is incorrect."), 401, "Password is incorrect."},
		{jwtinfra.ErrInvalidToken, 401, "Unauthorized"},
		{domain.NewError(domain.ErrValidation, "Invalid pet type"), 400, "Invalid pet type"},
		{fmt.Errorf("meeting m1: %w", domain.ErrVaccinationShape), 400, domain.ErrVaccinationShape.Message},
		{fmt.Errorf("bad cursor: %w", domain.ErrBadRequest), 400, "Bad Request"},
		{fmt.Errorf("lookup: %w", domain.NewError(domain.ErrNotFound, "User not found")), 404, "User not found"},
		{domain.NewError(domain.ErrConflict, "User exists. Please login."), 409, "User exists. Please login."},
		{errors.New("dynamo timeout"), 500, ""},
	}
	for _, tc := range cases {
		status, msg := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.msg, msg, tc.err.Error())
	}
}

func TestHTTPError_HidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	httpError(rr, req, errors.New("dynamo: table users not found"), msgServerError)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, MessageEnvelope{Success: false, Message: "Server error"}, decodeMessage(t, rr))
}

func TestWriteError_AlwaysCarriesSuccessFalse(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, "nope")

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.Equal(t, false, raw["success"])
	assert.Equal(t, "nope", raw["message"])
}
