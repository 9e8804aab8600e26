package handler

import (
	"net/http"

	"github.com/go-pet-adoption-api/internal/application/meeting"
	"github.com/go-pet-adoption-api/internal/transport/http/middleware"
)

const msgMeetingServerError = "Server error. Please try again later"

// MeetingHandler handles meeting submission and listing.
type MeetingHandler struct {
	svc meeting.Service
}

func NewMeetingHandler(svc meeting.Service) *MeetingHandler { return &MeetingHandler{svc: svc} }

func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub meeting.Submission
	if err := decodeJSON(w, r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	m, err := h.svc.Create(r.Context(), sub)
	if err != nil {
		httpError(w, r, err, msgMeetingServerError)
		return
	}
	writeJSON(w, http.StatusCreated, MeetingEnvelope{
		Success: true,
		Message: "Meeting submitted successfully",
		Meeting: m,
	})
}

// ListMine returns the caller's meetings.
func (h *MeetingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "No token provided")
		return
	}
	meetings, err := h.svc.ListForOwner(r.Context(), id.Email)
	if err != nil {
		httpError(w, r, err, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, MeetingsEnvelope{Success: true, Meetings: meetings})
}
