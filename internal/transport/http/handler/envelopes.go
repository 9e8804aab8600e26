package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
)

const (
	msgServerError    = "Server error"
	msgInvalidBody    = "Invalid request body"
	maxRequestBodyLen = 1 << 20
)

// MessageEnvelope is the generic response wrapper. Every failure is sent as
// {"success":false,"message":...}.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// PingEnvelope wraps health-check responses.
type PingEnvelope struct {
	Message string `json:"message"`
}

// UserEnvelope wraps registration responses.
type UserEnvelope struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// MeEnvelope wraps the current-user response.
type MeEnvelope struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// VerifyEnvelope wraps token verification responses.
type VerifyEnvelope struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

// MeetingEnvelope wraps meeting creation responses.
type MeetingEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Meeting *domain.Meeting `json:"meeting"`
}

// MeetingsEnvelope wraps meeting list responses.
type MeetingsEnvelope struct {
	Success  bool             `json:"success"`
	Meetings []domain.Meeting `json:"meetings"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Success: false, Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyLen)).Decode(v)
}

// httpError maps a service error onto a status code and client message.
// Unclassified errors are logged and answered with internalMsg.
func httpError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	status, msg := classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"err", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		msg = internalMsg
	}
	writeError(w, status, msg)
}

func classify(err error) (int, string) {
	var status int
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, jwtinfra.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrSchemaViolation), errors.Is(err, domain.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	default:
		return http.StatusInternalServerError, ""
	}

	var de *domain.Error
	if errors.As(err, &de) {
		return status, de.Message
	}
	return status, http.StatusText(status)
}
