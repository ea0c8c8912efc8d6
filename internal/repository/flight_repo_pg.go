package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Flight, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	Insert(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) (*domain.Flight, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	// SetLinks rewires the airport/aircraft/airline references. It is the
	// only path that touches these columns; the CRUD update never does.
	SetLinks(ctx context.Context, id uuid.UUID, links domain.FlightLinks) (*domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, departure_date, arrival_date, price_cents, dept_airport_id, dest_airport_id, aircraft_id, airline_id, creation_time, update_time, deletion_time`

func scanFlight(row rowScanner) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.DepartureDate, &f.ArrivalDate, &f.PriceCents, &f.DepartureAirportID, &f.DestinationAirportID, &f.AircraftID, &f.AirlineID, &f.CreationTime, &f.UpdateTime, &f.DeletionTime); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) ListActive(ctx context.Context, page, size int) ([]domain.Flight, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, 0, err
		}
		flights = append(flights, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM flight WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flight WHERE id=$1`, id))
}

func (r *PGFlightRepository) Insert(ctx context.Context, f *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flight (id, departure_date, arrival_date, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING creation_time, update_time`, f.ID, f.DepartureDate, f.ArrivalDate, f.PriceCents).
		Scan(&f.CreationTime, &f.UpdateTime)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flight SET departure_date=$1, arrival_date=$2, price_cents=$3, update_time=now()
		WHERE id=$4 RETURNING `+flightColumns, f.DepartureDate, f.ArrivalDate, f.PriceCents, f.ID)
	return scanFlight(row)
}

func (r *PGFlightRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flight SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+flightColumns, id)
	return scanFlight(row)
}

func (r *PGFlightRepository) SetLinks(ctx context.Context, id uuid.UUID, links domain.FlightLinks) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `UPDATE flight SET dept_airport_id=$1, dest_airport_id=$2, aircraft_id=$3, airline_id=$4, update_time=now()
		WHERE id=$5 RETURNING `+flightColumns, links.DepartureAirportID, links.DestinationAirportID, links.AircraftID, links.AirlineID, id)
	return scanFlight(row)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
