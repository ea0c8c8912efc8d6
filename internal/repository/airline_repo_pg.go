package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirlineRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Airline, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Airline, error)
	Insert(ctx context.Context, a *domain.Airline) error
	Update(ctx context.Context, a *domain.Airline) (*domain.Airline, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Airline, error)
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

const airlineColumns = `id, name, country, creation_time, update_time, deletion_time`

func scanAirline(row rowScanner) (*domain.Airline, error) {
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Name, &a.Country, &a.CreationTime, &a.UpdateTime, &a.DeletionTime); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirlineRepository) ListActive(ctx context.Context, page, size int) ([]domain.Airline, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airlineColumns+` FROM airline WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airlines := make([]domain.Airline, 0)
	for rows.Next() {
		a, err := scanAirline(rows)
		if err != nil {
			return nil, 0, err
		}
		airlines = append(airlines, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airline WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return airlines, total, nil
}

func (r *PGAirlineRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airline, error) {
	return scanAirline(r.db.QueryRow(ctx, `SELECT `+airlineColumns+` FROM airline WHERE id=$1`, id))
}

func (r *PGAirlineRepository) Insert(ctx context.Context, a *domain.Airline) error {
	return r.db.QueryRow(ctx, `INSERT INTO airline (id, name, country)
		VALUES ($1, $2, $3)
		RETURNING creation_time, update_time`, a.ID, a.Name, a.Country).
		Scan(&a.CreationTime, &a.UpdateTime)
}

func (r *PGAirlineRepository) Update(ctx context.Context, a *domain.Airline) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `UPDATE airline SET name=$1, country=$2, update_time=now()
		WHERE id=$3 RETURNING `+airlineColumns, a.Name, a.Country, a.ID)
	return scanAirline(row)
}

func (r *PGAirlineRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `UPDATE airline SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+airlineColumns, id)
	return scanAirline(row)
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
