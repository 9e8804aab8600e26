package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-pet-adoption-api/internal/domain"
)

// SubjectMeetingCreated is the event subject published after a meeting is stored.
const SubjectMeetingCreated = "meetings.created"

const deliveryTimeout = 10 * time.Second

// MeetingCreatedEvent is the payload published on SubjectMeetingCreated.
type MeetingCreatedEvent struct {
	MeetingID   string             `json:"meeting_id"`
	Email       string             `json:"email"`
	FullName    string             `json:"full_name"`
	PetName     string             `json:"pet_name"`
	PetType     domain.PetType     `json:"pet_type"`
	MeetingType domain.MeetingType `json:"meeting_type"`
	MeetingDate string             `json:"meeting_date"`
	MeetingTime string             `json:"meeting_time"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Service tells the outside world about new meetings. Delivery is best-effort
// and runs in the background; failures are only logged.
type Service interface {
	MeetingCreated(ctx context.Context, m domain.Meeting)
	// Wait blocks until every in-flight delivery has finished.
	Wait()
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, subject string, data any) error
}

type service struct {
	sms    smsSender
	mail   mailer
	events eventPublisher
	wg     sync.WaitGroup
}

// ServiceDeps holds the delivery channels. Any of them may be nil.
type ServiceDeps struct {
	SMS    smsSender
	Mailer mailer
	Events eventPublisher
}

func NewService(deps ServiceDeps) Service {
	return &service{sms: deps.SMS, mail: deps.Mailer, events: deps.Events}
}

func (s *service) MeetingCreated(ctx context.Context, m domain.Meeting) {
	ctx = context.WithoutCancel(ctx)
	text := confirmationText(m)

	if s.sms != nil && m.Phone != "" {
		s.deliver(ctx, "sms", func(ctx context.Context) error {
			return s.sms.SendSMS(ctx, m.Phone, text)
		})
	}
	if s.mail != nil && m.Email != "" {
		s.deliver(ctx, "email", func(context.Context) error {
			return s.mail.SendEmail(m.Email, "Your pet meeting is booked", text)
		})
	}
	if s.events != nil {
		s.deliver(ctx, "event", func(ctx context.Context) error {
			return s.events.Publish(ctx, SubjectMeetingCreated, newMeetingCreatedEvent(m))
		})
	}
}

func (s *service) Wait() { s.wg.Wait() }

func (s *service) deliver(ctx context.Context, channel string, send func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			slog.WarnContext(ctx, "meeting notification failed", "channel", channel, "err", err)
		}
	}()
}

func newMeetingCreatedEvent(m domain.Meeting) MeetingCreatedEvent {
	return MeetingCreatedEvent{
		MeetingID:   m.MeetingID,
		Email:       m.Email,
		FullName:    m.FullName,
		PetName:     m.PetName,
		PetType:     m.PetType,
		MeetingType: m.MeetingType(),
		MeetingDate: m.MeetingDate,
		MeetingTime: m.MeetingTime,
		CreatedAt:   m.CreatedAt,
	}
}

func confirmationText(m domain.Meeting) string {
	return fmt.Sprintf("Hi %s, your %s meeting for %s is booked on %s at %s.",
		m.FullName, m.MeetingType(), m.PetName, m.MeetingDate, m.MeetingTime)
}
