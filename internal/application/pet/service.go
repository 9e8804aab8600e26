package pet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/go-pet-adoption-api/internal/domain"
)

// ImagePrefix is the bucket folder pet images live under. Catalog entries
// reference them as "/images/<name>".
const ImagePrefix = "images/"

var (
	ErrInvalidImageKey = domain.NewError(domain.ErrBadRequest, "Invalid image name")
	ErrImageNotFound   = domain.NewError(domain.ErrNotFound, "Image not found")
)

type Service interface {
	List(ctx context.Context) ([]domain.Pet, error)
	Image(ctx context.Context, name string) (io.ReadCloser, string, error)
}

type petStore interface {
	List(ctx context.Context) ([]domain.Pet, error)
}

type petCache interface {
	Get(ctx context.Context) ([]domain.Pet, bool, error)
	Set(ctx context.Context, pets []domain.Pet) error
}

type imageStore interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type service struct {
	repo   petStore
	cache  petCache
	images imageStore
}

// ServiceDeps holds the pet service collaborators. Cache and Images are optional.
type ServiceDeps struct {
	PetRepo petStore
	Cache   petCache
	Images  imageStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.PetRepo, cache: deps.Cache, images: deps.Images}
}

// List serves the catalog from the cache when possible. Cache faults are
// logged and fall back to the store.
func (s *service) List(ctx context.Context) ([]domain.Pet, error) {
	if s.cache != nil {
		pets, ok, err := s.cache.Get(ctx)
		if err != nil {
			slog.WarnContext(ctx, "pet cache read failed", "err", err)
		} else if ok {
			return pets, nil
		}
	}

	pets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, pets); err != nil {
			slog.WarnContext(ctx, "pet cache write failed", "err", err)
		}
	}
	return pets, nil
}

// Image opens the pet image called name. The caller must close the body.
func (s *service) Image(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if !validImageName(name) {
		return nil, "", ErrInvalidImageKey
	}
	if s.images == nil {
		return nil, "", ErrImageNotFound
	}
	body, contentType, err := s.images.Download(ctx, ImagePrefix+name)
	if err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

// validImageName accepts a bare file name made of letters, digits, '.', '-' and '_'.
func validImageName(name string) bool {
	if name == "" || name == "." || name == ".." || path.Base(name) != name {
		return false
	}
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
