package domain

import (
	"cmp"
	"encoding/json"
	"time"
)

type MeetingType string

const (
	MeetingAdoption MeetingType = "adoption"
	MeetingRelease  MeetingType = "release"
)

func (t MeetingType) Valid() bool {
	return t == MeetingAdoption || t == MeetingRelease
}

type PetType string

const (
	PetCat PetType = "cat"
	PetDog PetType = "dog"
)

func (t PetType) Valid() bool {
	return t == PetCat || t == PetDog
}

// ErrVaccinationShape is returned when isVaccinated does not match the meeting type.
var ErrVaccinationShape = NewError(ErrSchemaViolation,
	"Vaccination status is required only for release meetings and must NOT be included for adoption meetings.")

// Variant is the part of a Meeting selected by its meeting type.
// Implemented only by Adoption and Release.
type Variant interface {
	MeetingType() MeetingType
	vaccination() *bool
}

// Adoption meetings never carry a vaccination status.
type Adoption struct{}

func (Adoption) MeetingType() MeetingType { return MeetingAdoption }
func (Adoption) vaccination() *bool       { return nil }

// Release meetings always carry a vaccination status.
type Release struct {
	IsVaccinated bool
}

func (Release) MeetingType() MeetingType { return MeetingRelease }
func (r Release) vaccination() *bool {
	v := r.IsVaccinated
	return &v
}

// VariantFor rebuilds a Variant from its flat representation, enforcing that
// isVaccinated is present exactly for release meetings.
func VariantFor(t MeetingType, isVaccinated *bool) (Variant, error) {
	switch {
	case t == MeetingAdoption && isVaccinated == nil:
		return Adoption{}, nil
	case t == MeetingRelease && isVaccinated != nil:
		return Release{IsVaccinated: *isVaccinated}, nil
	case t.Valid():
		return nil, ErrVaccinationShape
	default:
		return nil, NewError(ErrSchemaViolation, "Invalid meeting type")
	}
}

type Meeting struct {
	MeetingID   string
	FullName    string
	Email       string
	Phone       string
	MeetingDate string
	MeetingTime string
	PetName     string
	PetBreed    string
	PetImage    string
	PetType     PetType
	Variant     Variant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (m Meeting) MeetingType() MeetingType {
	if m.Variant == nil {
		return ""
	}
	return m.Variant.MeetingType()
}

// IsVaccinated returns nil for adoption meetings.
func (m Meeting) IsVaccinated() *bool {
	if m.Variant == nil {
		return nil
	}
	return m.Variant.vaccination()
}

type meetingJSON struct {
	ID           string      `json:"id,omitempty"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	MeetingDate  string      `json:"meetingDate"`
	MeetingTime  string      `json:"meetingTime"`
	PetName      string      `json:"petName"`
	PetBreed     string      `json:"petBreed"`
	PetImage     string      `json:"petImage"`
	MeetingType  MeetingType `json:"meetingType"`
	PetType      PetType     `json:"petType"`
	IsVaccinated *bool       `json:"isVaccinated,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (m Meeting) MarshalJSON() ([]byte, error) {
	return json.Marshal(meetingJSON{
		ID:           m.MeetingID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		MeetingDate:  m.MeetingDate,
		MeetingTime:  m.MeetingTime,
		PetName:      m.PetName,
		PetBreed:     m.PetBreed,
		PetImage:     m.PetImage,
		MeetingType:  m.MeetingType(),
		PetType:      m.PetType,
		IsVaccinated: m.IsVaccinated(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	})
}

func (m *Meeting) UnmarshalJSON(b []byte) error {
	var j meetingJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	variant, err := VariantFor(j.MeetingType, j.IsVaccinated)
	if err != nil {
		return err
	}
	*m = Meeting{
		MeetingID:   j.ID,
		FullName:    j.FullName,
		Email:       j.Email,
		Phone:       j.Phone,
		MeetingDate: j.MeetingDate,
		MeetingTime: j.MeetingTime,
		PetName:     j.PetName,
		PetBreed:    j.PetBreed,
		PetImage:    j.PetImage,
		PetType:     j.PetType,
		Variant:     variant,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
	return nil
}

// CompareMeetings orders meetings by
// (petName, petBreed, petType, meetingType, meetingDate, meetingTime, petImage).
func CompareMeetings(a, b Meeting) int {
	return cmp.Or(
		cmp.Compare(a.PetName, b.PetName),
		cmp.Compare(a.PetBreed, b.PetBreed),
		cmp.Compare(a.PetType, b.PetType),
		cmp.Compare(a.MeetingType(), b.MeetingType()),
		cmp.Compare(a.MeetingDate, b.MeetingDate),
		cmp.Compare(a.MeetingTime, b.MeetingTime),
		cmp.Compare(a.PetImage, b.PetImage),
	)
}
