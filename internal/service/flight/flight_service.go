// Package flight holds the use-cases for the flight-infrastructure entities:
// flights themselves plus the aircraft, airline and airport reference data.
package flight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const flightResource = "Flight"

type FlightUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Flight], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	Add(ctx context.Context, input FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id uuid.UUID, input FlightInput) (*domain.Flight, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
}

// Cache fronts the active flight listing. A nil cache disables it.
type Cache interface {
	GetFlightPage(ctx context.Context, page, size int) (*domain.Page[domain.Flight], error)
	SetFlightPage(ctx context.Context, page *domain.Page[domain.Flight]) error
	InvalidateFlights(ctx context.Context) error
}

// FlightInput holds the mutable business fields. Airport, aircraft and
// airline references move only through the repository link operation.
type FlightInput struct {
	DepartureDate time.Time
	ArrivalDate   time.Time
	PriceCents    int64
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context, page, size int) (*domain.Page[domain.Flight], error) {
	page, size = domain.NormalizePage(page, size)

	if s.cache != nil {
		if cached, err := s.cache.GetFlightPage(ctx, page, size); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	result := domain.NewPage(items, total, page, size)
	if s.cache != nil {
		_ = s.cache.SetFlightPage(ctx, result)
	}
	return result, nil
}

func (s *FlightService) Get(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(flightResource, "id", id.String())
		}
		return nil, fmt.Errorf("get flight: %w", err)
	}
	return f, nil
}

func (s *FlightService) Add(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	f := &domain.Flight{
		Base:          domain.Base{ID: uuid.New()},
		DepartureDate: input.DepartureDate,
		ArrivalDate:   input.ArrivalDate,
		PriceCents:    input.PriceCents,
	}
	if err := s.repo.Insert(ctx, f); err != nil {
		return nil, fmt.Errorf("add flight: %w", err)
	}
	s.invalidate(ctx)
	return f, nil
}

func (s *FlightService) Update(ctx context.Context, id uuid.UUID, input FlightInput) (*domain.Flight, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.DepartureDate = input.DepartureDate
	current.ArrivalDate = input.ArrivalDate
	current.PriceCents = input.PriceCents

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update flight: %w", err)
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *FlightService) Remove(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove flight: %w", err)
	}
	s.invalidate(ctx)
	return removed, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
