package handler

import (
	"net/http"

	"github.com/go-pet-adoption-api/internal/application/session"
	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
	"github.com/go-pet-adoption-api/internal/pkg/validate"
	"github.com/go-pet-adoption-api/internal/transport/http/middleware"
)

// SessionHandler handles login, token and logout endpoints.
type SessionHandler struct {
	svc     session.Service
	cookies CookieConfig
}

func NewSessionHandler(svc session.Service, cookies CookieConfig) *SessionHandler {
	return &SessionHandler{svc: svc, cookies: cookies}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tokens, err := h.svc.Login(r.Context(), req)
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	h.cookies.setAccess(w, tokens.Access)
	h.cookies.setRefresh(w, tokens.Refresh)
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "Login successful"})
}

// VerifyToken reports whether the access-token cookie is valid. It never fails.
func (h *SessionHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	res := h.svc.Verify(cookieValue(r, middleware.AccessTokenCookie))
	if res.State != jwtinfra.StateValid {
		writeJSON(w, http.StatusOK, VerifyEnvelope{Valid: false})
		return
	}
	writeJSON(w, http.StatusOK, VerifyEnvelope{Valid: true, Email: res.Email})
}

func (h *SessionHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	access, err := h.svc.Refresh(r.Context(), cookieValue(r, middleware.RefreshTokenCookie))
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	h.cookies.setAccess(w, access)
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.cookies.clearAll(w)
	writeJSON(w, http.StatusOK, MessageEnvelope{Success: true, Message: "Logged out"})
}
