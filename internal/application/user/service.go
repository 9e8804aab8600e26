package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pet-adoption-api/internal/domain"
)

var (
	ErrUserExists   = domain.NewError(domain.ErrConflict, "User exists. Please login.")
	ErrUserNotFound = domain.NewError(domain.ErrNotFound, "User not found")
)

type Service interface {
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
	Me(ctx context.Context, email string) (*domain.User, error)
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type passwordHasher interface {
	Hash(secret string) (string, error)
}

type service struct {
	repo   userStore
	hasher passwordHasher
}

type ServiceDeps struct {
	UserRepo userStore
	Hasher   passwordHasher
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.UserRepo, hasher: deps.Hasher}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	_, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, ErrUserExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Me resolves the user behind a verified session email.
func (s *service) Me(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return u, nil
}
