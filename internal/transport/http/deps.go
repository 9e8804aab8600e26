package http

import (
	"context"
	"io"
	"time"

	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

// MeetingRepository is the minimal interface the router requires from a meeting store.
// ListByEmail must return meetings ordered by domain.CompareMeetings.
type MeetingRepository interface {
	Put(ctx context.Context, m *domain.Meeting) error
	ListByEmail(ctx context.Context, email string) ([]domain.Meeting, error)
}

// PetRepository is the minimal interface the router requires from a pet store.
type PetRepository interface {
	List(ctx context.Context) ([]domain.Pet, error)
}

// PetCache is an optional read-through cache in front of PetRepository.
type PetCache interface {
	Get(ctx context.Context) ([]domain.Pet, bool, error)
	Set(ctx context.Context, pets []domain.Pet) error
}

// ImageStore is the minimal interface the router requires from an object storage backend.
type ImageStore interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// TokenProvider issues and verifies access and refresh tokens.
type TokenProvider interface {
	IssueAccess(email string) (string, error)
	IssueRefresh(email string) (string, error)
	VerifyAccess(token string) (*jwtinfra.Claims, error)
	Refresh(refreshToken string) (string, error)
	Check(accessToken string) jwtinfra.Result
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Matches(secret, hash string) bool
}

// MeetingNotifier is told about every stored meeting.
type MeetingNotifier interface {
	MeetingCreated(ctx context.Context, m domain.Meeting)
}
