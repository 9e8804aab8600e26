package handler

import (
	"context"
	"io"

	"github.com/go-pet-adoption-api/internal/application/meeting"
	"github.com/go-pet-adoption-api/internal/application/session"
	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/mock"
)

type mockSessionSvc struct{ mock.Mock }

func (m *mockSessionSvc) Login(ctx context.Context, req domain.LoginRequest) (*session.Tokens, error) {
	args := m.Called(ctx, req)
	if t, _ := args.Get(0).(*session.Tokens); t != nil {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionSvc) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}
func (m *mockSessionSvc) Verify(accessToken string) jwtinfra.Result {
	return m.Called(accessToken).Get(0).(jwtinfra.Result)
}

type mockUserSvc struct{ mock.Mock }

func (m *mockUserSvc) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserSvc) Me(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMeetingSvc struct{ mock.Mock }

func (m *mockMeetingSvc) Create(ctx context.Context, sub meeting.Submission) (*domain.Meeting, error) {
	args := m.Called(ctx, sub)
	if mt, _ := args.Get(0).(*domain.Meeting); mt != nil {
		return mt, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockMeetingSvc) ListForOwner(ctx context.Context, email string) ([]domain.Meeting, error) {
	args := m.Called(ctx, email)
	if ms, _ := args.Get(0).([]domain.Meeting); ms != nil {
		return ms, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPetSvc struct{ mock.Mock }

func (m *mockPetSvc) List(ctx context.Context) ([]domain.Pet, error) {
	args := m.Called(ctx)
	if ps, _ := args.Get(0).([]domain.Pet); ps != nil {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPetSvc) Image(ctx context.Context, name string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, name)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.String(1), args.Error(2)
}
