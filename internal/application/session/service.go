package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
)

var (
	ErrUserNotFound        = domain.NewError(domain.ErrNotFound, "User does not exist. Please sign up.")
	ErrUsernameMismatch    = domain.NewError(domain.ErrUnauthorized, "Username is incorrect.")
	ErrWrongPassword       = domain.NewError(domain.ErrUnauthorized, "Password is incorrect.")
	ErrNoRefreshToken      = domain.NewError(domain.ErrUnauthorized, "No refresh token")
	ErrInvalidRefreshToken = domain.NewError(domain.ErrUnauthorized, "Invalid refresh token")
)

// Tokens is the credential pair handed out on login.
type Tokens struct {
	Access  string
	Refresh string
}

type Service interface {
	Login(ctx context.Context, req domain.LoginRequest) (*Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Verify(accessToken string) jwtinfra.Result
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type passwordMatcher interface {
	Matches(secret, hash string) bool
}

type tokenProvider interface {
	IssueAccess(email string) (string, error)
	IssueRefresh(email string) (string, error)
	Refresh(refreshToken string) (string, error)
	Check(accessToken string) jwtinfra.Result
}

type service struct {
	users  userStore
	hasher passwordMatcher
	tokens tokenProvider
}

type ServiceDeps struct {
	UserRepo userStore
	Hasher   passwordMatcher
	Tokens   tokenProvider
}

func NewService(deps ServiceDeps) Service {
	return &service{users: deps.UserRepo, hasher: deps.Hasher, tokens: deps.Tokens}
}

// Login checks, in order, that the email is registered, that the username
// belongs to it and that the password matches.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*Tokens, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if u.Username != req.Username {
		return nil, ErrUsernameMismatch
	}
	if !s.hasher.Matches(req.Password, u.PasswordHash) {
		return nil, ErrWrongPassword
	}

	access, err := s.tokens.IssueAccess(u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &Tokens{Access: access, Refresh: refresh}, nil
}

// Refresh trades a refresh token for a new access token. The refresh token
// stays valid until its own expiry.
func (s *service) Refresh(_ context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}
	access, err := s.tokens.Refresh(refreshToken)
	if errors.Is(err, jwtinfra.ErrInvalidToken) {
		return "", ErrInvalidRefreshToken
	}
	if err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	return access, nil
}

func (s *service) Verify(accessToken string) jwtinfra.Result {
	return s.tokens.Check(accessToken)
}
