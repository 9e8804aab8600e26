package handler

import (
	"net/http"

	"github.com/go-pet-adoption-api/internal/application/user"
	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/go-pet-adoption-api/internal/pkg/validate"
	"github.com/go-pet-adoption-api/internal/transport/http/middleware"
)

// UserHandler handles registration and profile endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.svc.Register(r.Context(), req)
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	writeJSON(w, http.StatusCreated, UserEnvelope{Success: true, User: u})
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}
	u, err := h.svc.Me(r.Context(), id.Email)
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, MeEnvelope{Success: true, Username: u.Username, Email: u.Email})
}
