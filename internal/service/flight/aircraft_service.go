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

const aircraftResource = "Aircraft"

type AircraftUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Aircraft], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error)
	Add(ctx context.Context, input AircraftInput) (*domain.Aircraft, error)
	Update(ctx context.Context, id uuid.UUID, input AircraftInput) (*domain.Aircraft, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error)
}

type AircraftInput struct {
	ModelName       string
	Code            string
	Seats           int16
	Country         string
	ManufactureDate time.Time
}

type AircraftService struct {
	repo repository.AircraftRepository
}

func NewAircraftService(repo repository.AircraftRepository) *AircraftService {
	return &AircraftService{repo: repo}
}

func (s *AircraftService) List(ctx context.Context, page, size int) (*domain.Page[domain.Aircraft], error) {
	page, size = domain.NormalizePage(page, size)
	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list aircraft: %w", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

func (s *AircraftService) Get(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(aircraftResource, "id", id.String())
		}
		return nil, fmt.Errorf("get aircraft: %w", err)
	}
	return a, nil
}

func (s *AircraftService) Add(ctx context.Context, input AircraftInput) (*domain.Aircraft, error) {
	a := &domain.Aircraft{
		Base:            domain.Base{ID: uuid.New()},
		ModelName:       input.ModelName,
		Code:            input.Code,
		Seats:           input.Seats,
		Country:         input.Country,
		ManufactureDate: input.ManufactureDate,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("add aircraft: %w", err)
	}
	return a, nil
}

func (s *AircraftService) Update(ctx context.Context, id uuid.UUID, input AircraftInput) (*domain.Aircraft, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.ModelName = input.ModelName
	current.Code = input.Code
	current.Seats = input.Seats
	current.Country = input.Country
	current.ManufactureDate = input.ManufactureDate

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update aircraft: %w", err)
	}
	return updated, nil
}

func (s *AircraftService) Remove(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove aircraft: %w", err)
	}
	return removed, nil
}

var _ AircraftUseCase = (*AircraftService)(nil)
