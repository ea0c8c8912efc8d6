package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Customer, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Insert(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

type PGCustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &PGCustomerRepository{db: db}
}

const customerColumns = `id, name, surname, email, password, phone, age, city, country, creation_time, update_time, deletion_time`

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Surname, &c.Email, &c.Password, &c.Phone, &c.Age, &c.City, &c.Country, &c.CreationTime, &c.UpdateTime, &c.DeletionTime); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGCustomerRepository) ListActive(ctx context.Context, page, size int) ([]domain.Customer, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customer WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM customer WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *PGCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return scanCustomer(r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customer WHERE id=$1`, id))
}

func (r *PGCustomerRepository) Insert(ctx context.Context, c *domain.Customer) error {
	return r.db.QueryRow(ctx, `INSERT INTO customer (id, name, surname, email, password, phone, age, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING creation_time, update_time`, c.ID, c.Name, c.Surname, c.Email, c.Password, c.Phone, c.Age, c.City, c.Country).
		Scan(&c.CreationTime, &c.UpdateTime)
}

func (r *PGCustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `UPDATE customer SET name=$1, surname=$2, email=$3, password=$4, phone=$5, age=$6, city=$7, country=$8, update_time=now()
		WHERE id=$9 RETURNING `+customerColumns, c.Name, c.Surname, c.Email, c.Password, c.Phone, c.Age, c.City, c.Country, c.ID)
	return scanCustomer(row)
}

func (r *PGCustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `UPDATE customer SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+customerColumns, id)
	return scanCustomer(row)
}

var _ CustomerRepository = (*PGCustomerRepository)(nil)
