package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pet-adoption-api/internal/application/meeting"
	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMeeting_Created(t *testing.T) {
	svc := new(mockMeetingSvc)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(s meeting.Submission) bool {
		return s.MeetingType == "release" && s.IsVaccinated == "true"
	})).Return(&domain.Meeting{MeetingID: "m1", PetType: domain.PetCat, Variant: domain.Release{IsVaccinated: true}}, nil)

	body := []byte(`{"meetingType":"release","petType":"cat","isVaccinated":"true"}`)
	rr := httptest.NewRecorder()
	NewMeetingHandler(svc).Create(rr, httptest.NewRequest(http.MethodPost, "/meetings", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	assert.Equal(t, true, raw["success"])
	assert.Equal(t, "Meeting submitted successfully", raw["message"])
	m := raw["meeting"].(map[string]any)
	assert.Equal(t, "m1", m["id"])
	assert.Equal(t, true, m["isVaccinated"])
}

func TestCreateMeeting_ValidationReasons(t *testing.T) {
	for _, reason := range []*domain.Error{
		meeting.ErrInvalidMeetingType,
		meeting.ErrInvalidPetType,
		meeting.ErrInvalidDateTime,
		meeting.ErrPastMeetingTime,
		meeting.ErrOutsideBusinessHours,
		domain.ErrVaccinationShape,
	} {
		svc := new(mockMeetingSvc)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, reason)

		rr := httptest.NewRecorder()
		NewMeetingHandler(svc).Create(rr, httptest.NewRequest(http.MethodPost, "/meetings", bytes.NewReader([]byte(`{}`))))

		assert.Equal(t, http.StatusBadRequest, rr.Code, reason.Message)
		assert.Equal(t, MessageEnvelope{Success: false, Message: reason.Message}, decodeMessage(t, rr))
	}
}

func TestCreateMeeting_StoreFailure(t *testing.T) {
	svc := new(mockMeetingSvc)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("store meeting: throttled"))

	rr := httptest.NewRecorder()
	NewMeetingHandler(svc).Create(rr, httptest.NewRequest(http.MethodPost, "/meetings", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server error. Please try again later", decodeMessage(t, rr).Message)
}

func TestListMine(t *testing.T) {
	svc := new(mockMeetingSvc)
	svc.On("ListForOwner", mock.Anything, "ann@x.io").Return([]domain.Meeting{
		{MeetingID: "m1", Variant: domain.Adoption{}},
	}, nil)

	rr := httptest.NewRecorder()
	NewMeetingHandler(svc).ListMine(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/meetings/user", nil), "ann@x.io"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
	list := raw["meetings"].([]any)
	require.Len(t, list, 1)
	assert.NotContains(t, list[0].(map[string]any), "isVaccinated")
}

func TestListMine_Empty(t *testing.T) {
	svc := new(mockMeetingSvc)
	svc.On("ListForOwner", mock.Anything, "ann@x.io").Return([]domain.Meeting{}, nil)

	rr := httptest.NewRecorder()
	NewMeetingHandler(svc).ListMine(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/meetings/user", nil), "ann@x.io"))
	assert.JSONEq(t, `{"success":true,"meetings":[]}`, rr.Body.String())
}

func TestListMine_StoreFailure(t *testing.T) {
	svc := new(mockMeetingSvc)
	svc.On("ListForOwner", mock.Anything, "ann@x.io").Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	NewMeetingHandler(svc).ListMine(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/meetings/user", nil), "ann@x.io"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Server error", decodeMessage(t, rr).Message)
}
