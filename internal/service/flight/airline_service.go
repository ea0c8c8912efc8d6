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

const airlineResource = "Airline"

type AirlineUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Airline], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Airline, error)
	Add(ctx context.Context, input AirlineInput) (*domain.Airline, error)
	Update(ctx context.Context, id uuid.UUID, input AirlineInput) (*domain.Airline, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Airline, error)
}

type AirlineInput struct {
	Name    string
	Country string
}

type AirlineService struct {
	repo repository.AirlineRepository
}

func NewAirlineService(repo repository.AirlineRepository) *AirlineService {
	return &AirlineService{repo: repo}
}

func (s *AirlineService) List(ctx context.Context, page, size int) (*domain.Page[domain.Airline], error) {
	page, size = domain.NormalizePage(page, size)
	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list airlines: %w", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

func (s *AirlineService) Get(ctx context.Context, id uuid.UUID) (*domain.Airline, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(airlineResource, "id", id.String())
		}
		return nil, fmt.Errorf("get airline: %w", err)
	}
	return a, nil
}

func (s *AirlineService) Add(ctx context.Context, input AirlineInput) (*domain.Airline, error) {
	a := &domain.Airline{
		Base:    domain.Base{ID: uuid.New()},
		Name:    input.Name,
		Country: input.Country,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("add airline: %w", err)
	}
	return a, nil
}

func (s *AirlineService) Update(ctx context.Context, id uuid.UUID, input AirlineInput) (*domain.Airline, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Country = input.Country

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update airline: %w", err)
	}
	return updated, nil
}

func (s *AirlineService) Remove(ctx context.Context, id uuid.UUID) (*domain.Airline, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove airline: %w", err)
	}
	return removed, nil
}

var _ AirlineUseCase = (*AirlineService)(nil)
