package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/avialane/flightbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resource = "Customer"

type CustomerUseCase interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Customer], error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Add(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*domain.Customer, error)
	Remove(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// CustomerInput holds the mutable business fields. Identifier and timestamps
// are never caller-supplied.
type CustomerInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
	Phone    string
	Age      int16
	City     string
	Country  string
}

type CustomerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(ctx context.Context, page, size int) (*domain.Page[domain.Customer], error) {
	page, size = domain.NormalizePage(page, size)
	items, total, err := s.repo.ListActive(ctx, page, size)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return domain.NewPage(items, total, page, size), nil
}

// Get finds a customer by id. Soft-deleted customers are still found; only
// listings hide them.
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFound(resource, "id", id.String())
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Add(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	c := &domain.Customer{
		Base:     domain.Base{ID: uuid.New()},
		Name:     input.Name,
		Surname:  input.Surname,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Age:      input.Age,
		City:     input.City,
		Country:  input.Country,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("add customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*domain.Customer, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Surname = input.Surname
	current.Email = input.Email
	current.Password = input.Password
	current.Phone = input.Phone
	current.Age = input.Age
	current.City = input.City
	current.Country = input.Country

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

func (s *CustomerService) Remove(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	removed, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove customer: %w", err)
	}
	return removed, nil
}

var _ CustomerUseCase = (*CustomerService)(nil)
