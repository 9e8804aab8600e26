package pet

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockPetStore struct{ mock.Mock }

func (m *mockPetStore) List(ctx context.Context) ([]domain.Pet, error) {
	args := m.Called(ctx)
	if ps, _ := args.Get(0).([]domain.Pet); ps != nil {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPetCache struct{ mock.Mock }

func (m *mockPetCache) Get(ctx context.Context) ([]domain.Pet, bool, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Pet)
	return ps, args.Bool(1), args.Error(2)
}
func (m *mockPetCache) Set(ctx context.Context, pets []domain.Pet) error {
	return m.Called(ctx, pets).Error(0)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	body, _ := args.Get(0).(io.ReadCloser)
	return body, args.String(1), args.Error(2)
}

var catalog = []domain.Pet{{PetID: "p1", Name: "Rex"}, {PetID: "p2", Name: "Miso"}}

// --- tests ---

func TestList_NoCache(t *testing.T) {
	repo := new(mockPetStore)
	repo.On("List", mock.Anything).Return(catalog, nil)

	got, err := NewService(ServiceDeps{PetRepo: repo}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestList_CacheHitSkipsStore(t *testing.T) {
	repo := new(mockPetStore)
	cache := new(mockPetCache)
	cache.On("Get", mock.Anything).Return(catalog, true, nil)

	got, err := NewService(ServiceDeps{PetRepo: repo, Cache: cache}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestList_CacheMissFillsCache(t *testing.T) {
	repo := new(mockPetStore)
	cache := new(mockPetCache)
	cache.On("Get", mock.Anything).Return(nil, false, nil)
	repo.On("List", mock.Anything).Return(catalog, nil)
	cache.On("Set", mock.Anything, catalog).Return(nil)

	_, err := NewService(ServiceDeps{PetRepo: repo, Cache: cache}).List(context.Background())
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestList_CacheFaultsFallBackToStore(t *testing.T) {
	repo := new(mockPetStore)
	cache := new(mockPetCache)
	cache.On("Get", mock.Anything).Return(nil, false, errors.New("conn refused"))
	repo.On("List", mock.Anything).Return(catalog, nil)
	cache.On("Set", mock.Anything, catalog).Return(errors.New("conn refused"))

	got, err := NewService(ServiceDeps{PetRepo: repo, Cache: cache}).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestList_StoreFailure(t *testing.T) {
	repo := new(mockPetStore)
	repo.On("List", mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewService(ServiceDeps{PetRepo: repo}).List(context.Background())
	assert.ErrorContains(t, err, "list pets")
}

func TestImage_Downloads(t *testing.T) {
	images := new(mockImageStore)
	images.On("Download", mock.Anything, "images/rex.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg")), "image/jpeg", nil)

	body, ct, err := NewService(ServiceDeps{Images: images}).Image(context.Background(), "rex.jpg")
	require.NoError(t, err)
	defer body.Close()
	b, _ := io.ReadAll(body)
	assert.Equal(t, "jpeg", string(b))
	assert.Equal(t, "image/jpeg", ct)
}

func TestImage_RejectsUnsafeNames(t *testing.T) {
	images := new(mockImageStore)
	svc := NewService(ServiceDeps{Images: images})
	for _, name := range []string{"", ".", "..", "../secret", "a/b.jpg", "rex jpg", "%2e%2e"} {
		_, _, err := svc.Image(context.Background(), name)
		assert.Same(t, ErrInvalidImageKey, err, name)
	}
	images.AssertNotCalled(t, "Download", mock.Anything, mock.Anything)
}

func TestImage_NoStoreConfigured(t *testing.T) {
	_, _, err := NewService(ServiceDeps{}).Image(context.Background(), "rex.jpg")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImage_MissingObject(t *testing.T) {
	images := new(mockImageStore)
	images.On("Download", mock.Anything, "images/none.jpg").Return(nil, "", domain.ErrNotFound)

	_, _, err := NewService(ServiceDeps{Images: images}).Image(context.Background(), "none.jpg")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
