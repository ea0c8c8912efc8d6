package booking

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

const resource = "Booking"

type BookingUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Booking], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Add(ctx context.Context, input BookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id uuid.UUID, input BookingInput) (*domain.Booking, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// BookingInput holds the mutable business fields. The customer and flight
// references are not among them; they move only through the repository link
// operation.
type BookingInput struct {
	State              string
	PaymentDate        *time.Time
	PaymentAmountCents int64
	Insurance          bool
	LuggageKg          int16
}

type BookingService struct {
	repo repository.BookingRepository
}

func NewBookingService(repo repository.BookingRepository) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) List(ctx context.Context, page, size int) (*domain.Page[domain.Booking], error) {
	page, size = domain.NormalizePage(page, size)
	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

func (s *BookingService) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(resource, "id", id.String())
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) Add(ctx context.Context, input BookingInput) (*domain.Booking, error) {
	b := &domain.Booking{
		Base:               domain.Base{ID: uuid.New()},
		State:              input.State,
		PaymentDate:        input.PaymentDate,
		PaymentAmountCents: input.PaymentAmountCents,
		Insurance:          input.Insurance,
		LuggageKg:          input.LuggageKg,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, fmt.Errorf("add booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id uuid.UUID, input BookingInput) (*domain.Booking, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.State = input.State
	current.PaymentDate = input.PaymentDate
	current.PaymentAmountCents = input.PaymentAmountCents
	current.Insurance = input.Insurance
	current.LuggageKg = input.LuggageKg

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return updated, nil
}

func (s *BookingService) Remove(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove booking: %w", err)
	}
	return removed, nil
}

var _ BookingUseCase = (*BookingService)(nil)
