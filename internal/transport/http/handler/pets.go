package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-pet-adoption-api/internal/application/pet"
)

// PetHandler serves the pet catalog and its images.
type PetHandler struct {
	svc pet.Service
}

func NewPetHandler(svc pet.Service) *PetHandler { return &PetHandler{svc: svc} }

func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	pets, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, pets)
}

func (h *PetHandler) Image(w http.ResponseWriter, r *http.Request) {
	body, contentType, err := h.svc.Image(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		slog.WarnContext(r.Context(), "image stream interrupted", "err", err)
	}
}
