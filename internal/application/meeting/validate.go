package meeting

import (
	"strings"
	"time"

	"github.com/go-pet-adoption-api/internal/domain"
)

// Rejection reasons, checked in this order.
var (
	ErrInvalidMeetingType   = domain.NewError(domain.ErrValidation, "Invalid meeting type")
	ErrInvalidPetType       = domain.NewError(domain.ErrValidation, "Invalid pet type")
	ErrInvalidDateTime      = domain.NewError(domain.ErrValidation, "Invalid meeting date or time.")
	ErrPastMeetingTime      = domain.NewError(domain.ErrValidation, "Meeting date cannot be in the past.")
	ErrOutsideBusinessHours = domain.NewError(domain.ErrValidation, "Meeting time must be between 9am to 5pm.")
)

const (
	openingHour = 9
	closingHour = 17
)

var meetingLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// Submission is a meeting request as sent by a client. IsVaccinated is left
// untyped since clients send it as a bool, a string or not at all.
type Submission struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	MeetingDate  string `json:"meetingDate"`
	MeetingTime  string `json:"meetingTime"`
	PetName      string `json:"petName"`
	PetBreed     string `json:"petBreed"`
	PetImage     string `json:"petImage"`
	MeetingType  string `json:"meetingType"`
	PetType      string `json:"petType"`
	IsVaccinated any    `json:"isVaccinated"`
}

// Validate applies the meeting business rules to sub and returns the
// normalized meeting. The first failing rule wins. Dates and times are read
// in loc and must be strictly after now.
func Validate(sub Submission, now time.Time, loc *time.Location) (domain.Meeting, error) {
	petType := domain.PetType(strings.ToLower(sub.PetType))
	meetingType := domain.MeetingType(sub.MeetingType)

	if !meetingType.Valid() {
		return domain.Meeting{}, ErrInvalidMeetingType
	}
	if !petType.Valid() {
		return domain.Meeting{}, ErrInvalidPetType
	}

	at, ok := parseMeetingTime(sub.MeetingDate, sub.MeetingTime, loc)
	if !ok {
		return domain.Meeting{}, ErrInvalidDateTime
	}
	if !at.After(now) {
		return domain.Meeting{}, ErrPastMeetingTime
	}
	if h := at.Hour(); h < openingHour || h >= closingHour {
		return domain.Meeting{}, ErrOutsideBusinessHours
	}

	var variant domain.Variant = domain.Adoption{}
	if meetingType == domain.MeetingRelease {
		variant = domain.Release{IsVaccinated: coerceVaccinated(sub.IsVaccinated)}
	}

	return domain.Meeting{
		FullName:    strings.TrimSpace(sub.FullName),
		Email:       strings.TrimSpace(sub.Email),
		Phone:       strings.TrimSpace(sub.Phone),
		MeetingDate: sub.MeetingDate,
		MeetingTime: sub.MeetingTime,
		PetName:     sub.PetName,
		PetBreed:    sub.PetBreed,
		PetImage:    sub.PetImage,
		PetType:     petType,
		Variant:     variant,
	}, nil
}

func parseMeetingTime(date, clock string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range meetingLayouts {
		if t, err := time.ParseInLocation(layout, date+"T"+clock, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// coerceVaccinated accepts only true and "true". Every other value,
// including "yes" and 1, counts as not vaccinated.
func coerceVaccinated(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true"
	default:
		return false
	}
}
