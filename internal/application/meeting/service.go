package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pet-adoption-api/internal/domain"
)

type Service interface {
	Create(ctx context.Context, sub Submission) (*domain.Meeting, error)
	ListForOwner(ctx context.Context, email string) ([]domain.Meeting, error)
}

type meetingStore interface {
	Put(ctx context.Context, m *domain.Meeting) error
	ListByEmail(ctx context.Context, email string) ([]domain.Meeting, error)
}

type notifier interface {
	MeetingCreated(ctx context.Context, m domain.Meeting)
}

type service struct {
	repo     meetingStore
	notifier notifier
	now      func() time.Time
	loc      *time.Location
}

// ServiceDeps holds the meeting service collaborators. Notifier is optional;
// Now defaults to time.Now and Location to time.Local.
type ServiceDeps struct {
	MeetingRepo meetingStore
	Notifier    notifier
	Now         func() time.Time
	Location    *time.Location
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		repo:     deps.MeetingRepo,
		notifier: deps.Notifier,
		now:      deps.Now,
		loc:      deps.Location,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.loc == nil {
		s.loc = time.Local
	}
	return s
}

func (s *service) Create(ctx context.Context, sub Submission) (*domain.Meeting, error) {
	m, err := Validate(sub, s.now(), s.loc)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Put(ctx, &m); err != nil {
		if errors.Is(err, domain.ErrSchemaViolation) {
			return nil, err
		}
		return nil, fmt.Errorf("store meeting: %w", err)
	}
	if s.notifier != nil {
		s.notifier.MeetingCreated(ctx, m)
	}
	return &m, nil
}

func (s *service) ListForOwner(ctx context.Context, email string) ([]domain.Meeting, error) {
	meetings, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	return meetings, nil
}
