package flight

import (
	"context"
	"testing"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightRepository is a mock implementation of repository.FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) ListActive(ctx context.Context, page, size int) ([]domain.Flight, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Flight), args.Get(1).(int64), args.Error(2)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Insert(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) (*domain.Flight, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) SetLinks(ctx context.Context, id uuid.UUID, links domain.FlightLinks) (*domain.Flight, error) {
	args := m.Called(ctx, id, links)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

// MockCache is a mock implementation of Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlightPage(ctx context.Context, page, size int) (*domain.Page[domain.Flight], error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Flight]), args.Error(1)
}

func (m *MockCache) SetFlightPage(ctx context.Context, page *domain.Page[domain.Flight]) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testFlightInput() FlightInput {
	return FlightInput{
		DepartureDate: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		ArrivalDate:   time.Date(2025, 7, 1, 14, 0, 0, 0, time.UTC),
		PriceCents:    19900,
	}
}

func TestFlightService_ListCacheMiss(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	svc := NewFlightService(repo, cache)
	ctx := context.Background()

	flights := []domain.Flight{{Base: domain.Base{ID: uuid.New()}, PriceCents: 19900}}
	cache.On("GetFlightPage", ctx, 0, domain.DefaultPageSize).Return(nil, nil)
	repo.On("ListActive", ctx, 0, domain.DefaultPageSize).Return(flights, int64(1), nil)
	cache.On("SetFlightPage", ctx, mock.Anything).Return(nil)

	page, err := svc.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_ListCacheHitSkipsRepo(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	svc := NewFlightService(repo, cache)
	ctx := context.Background()

	cached := domain.NewPage([]domain.Flight{{Base: domain.Base{ID: uuid.New()}}}, 1, 0, domain.DefaultPageSize)
	cache.On("GetFlightPage", ctx, 0, domain.DefaultPageSize).Return(cached, nil)

	page, err := svc.List(ctx, 0, domain.DefaultPageSize)
	require.NoError(t, err)
	assert.Equal(t, cached, page)

	cache.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListActive")
}

func TestFlightService_ListWithoutCache(t *testing.T) {
	repo := &MockFlightRepository{}
	svc := NewFlightService(repo, nil)
	ctx := context.Background()

	repo.On("ListActive", ctx, 0, domain.DefaultPageSize).Return([]domain.Flight{}, int64(0), nil)

	page, err := svc.List(ctx, 0, domain.DefaultPageSize)
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	repo.AssertExpectations(t)
}

func TestFlightService_AddInvalidatesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	svc := NewFlightService(repo, cache)
	ctx := context.Background()

	repo.On("Insert", ctx, mock.AnythingOfType("*domain.Flight")).Return(nil)
	cache.On("InvalidateFlights", ctx).Return(nil)

	created, err := svc.Add(ctx, testFlightInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.DepartureAirportID)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_RemoveInvalidatesCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	svc := NewFlightService(repo, cache)
	ctx := context.Background()

	id := uuid.New()
	deleted := time.Now()
	repo.On("GetByID", ctx, id).Return(&domain.Flight{Base: domain.Base{ID: id}}, nil)
	repo.On("SoftDelete", ctx, id).Return(&domain.Flight{Base: domain.Base{ID: id, DeletionTime: &deleted}}, nil)
	cache.On("InvalidateFlights", ctx).Return(nil)

	removed, err := svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, removed.DeletionTime)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_GetNotFound(t *testing.T) {
	repo := &MockFlightRepository{}
	svc := NewFlightService(repo, nil)
	ctx := context.Background()

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, pgx.ErrNoRows)

	_, err := svc.Get(ctx, id)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Flight with id["+id.String()+"] not found.", err.Error())
}
