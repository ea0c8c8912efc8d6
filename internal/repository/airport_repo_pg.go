package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Airport, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
	Insert(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, a *domain.Airport) (*domain.Airport, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Airport, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

const airportColumns = `id, name, code, city, creation_time, update_time, deletion_time`

func scanAirport(row rowScanner) (*domain.Airport, error) {
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.City, &a.CreationTime, &a.UpdateTime, &a.DeletionTime); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) ListActive(ctx context.Context, page, size int) ([]domain.Airport, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+airportColumns+` FROM airport WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, 0, err
		}
		airports = append(airports, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airport WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return airports, total, nil
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	return scanAirport(r.db.QueryRow(ctx, `SELECT `+airportColumns+` FROM airport WHERE id=$1`, id))
}

func (r *PGAirportRepository) Insert(ctx context.Context, a *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airport (id, name, code, city)
		VALUES ($1, $2, $3, $4)
		RETURNING creation_time, update_time`, a.ID, a.Name, a.Code, a.City).
		Scan(&a.CreationTime, &a.UpdateTime)
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `UPDATE airport SET name=$1, code=$2, city=$3, update_time=now()
		WHERE id=$4 RETURNING `+airportColumns, a.Name, a.Code, a.City, a.ID)
	return scanAirport(row)
}

func (r *PGAirportRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `UPDATE airport SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+airportColumns, id)
	return scanAirport(row)
}

var _ AirportRepository = (*PGAirportRepository)(nil)
