package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Aircraft, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error)
	Insert(ctx context.Context, a *domain.Aircraft) error
	Update(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error)
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

const aircraftColumns = `id, model_name, code, seats, country, manufacture_date, creation_time, update_time, deletion_time`

func scanAircraft(row rowScanner) (*domain.Aircraft, error) {
	var a domain.Aircraft
	if err := row.Scan(&a.ID, &a.ModelName, &a.Code, &a.Seats, &a.Country, &a.ManufactureDate, &a.CreationTime, &a.UpdateTime, &a.DeletionTime); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGAircraftRepository) ListActive(ctx context.Context, page, size int) ([]domain.Aircraft, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+aircraftColumns+` FROM aircraft WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	aircraft := make([]domain.Aircraft, 0)
	for rows.Next() {
		a, err := scanAircraft(rows)
		if err != nil {
			return nil, 0, err
		}
		aircraft = append(aircraft, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM aircraft WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return aircraft, total, nil
}

func (r *PGAircraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	return scanAircraft(r.db.QueryRow(ctx, `SELECT `+aircraftColumns+` FROM aircraft WHERE id=$1`, id))
}

func (r *PGAircraftRepository) Insert(ctx context.Context, a *domain.Aircraft) error {
	return r.db.QueryRow(ctx, `INSERT INTO aircraft (id, model_name, code, seats, country, manufacture_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING creation_time, update_time`, a.ID, a.ModelName, a.Code, a.Seats, a.Country, a.ManufactureDate).
		Scan(&a.CreationTime, &a.UpdateTime)
}

func (r *PGAircraftRepository) Update(ctx context.Context, a *domain.Aircraft) (*domain.Aircraft, error) {
	row := r.db.QueryRow(ctx, `UPDATE aircraft SET model_name=$1, code=$2, seats=$3, country=$4, manufacture_date=$5, update_time=now()
		WHERE id=$6 RETURNING `+aircraftColumns, a.ModelName, a.Code, a.Seats, a.Country, a.ManufactureDate, a.ID)
	return scanAircraft(row)
}

func (r *PGAircraftRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Aircraft, error) {
	row := r.db.QueryRow(ctx, `UPDATE aircraft SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+aircraftColumns, id)
	return scanAircraft(row)
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)
