package flight

import (
	"context"
	"errors"
	"fmt"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const airportResource = "Airport"

type AirportUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Airport], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	Add(ctx context.Context, input AirportInput) (*domain.Airport, error)
	Update(ctx context.Context, id uuid.UUID, input AirportInput) (*domain.Airport, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
}

type AirportInput struct {
	Name string
	Code string
	City string
}

type AirportService struct {
	repo repository.AirportRepository
}

func NewAirportService(repo repository.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

func (s *AirportService) List(ctx context.Context, page, size int) (*domain.Page[domain.Airport], error) {
	page, size = domain.NormalizePage(page, size)
	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

func (s *AirportService) Get(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(airportResource, "id", id.String())
		}
		return nil, fmt.Errorf("get airport: %w", err)
	}
	return a, nil
}

func (s *AirportService) Add(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	a := &domain.Airport{
		Base: domain.Base{ID: uuid.New()},
		Name: input.Name,
		Code: input.Code,
		City: input.City,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("add airport: %w", err)
	}
	return a, nil
}

func (s *AirportService) Update(ctx context.Context, id uuid.UUID, input AirportInput) (*domain.Airport, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Code = input.Code
	current.City = input.City

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update airport: %w", err)
	}
	return updated, nil
}

func (s *AirportService) Remove(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove airport: %w", err)
	}
	return removed, nil
}

var _ AirportUseCase = (*AirportService)(nil)
