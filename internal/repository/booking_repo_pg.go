package repository

import (
	"context"

	"github.com/avialane/flightbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	ListActive(ctx context.Context, page, size int) ([]domain.Booking, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Insert(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// SetLinks rewires the customer/flight references. A reference may point
	// at a row that is soft-deleted later; listings never filter through it.
	SetLinks(ctx context.Context, id uuid.UUID, links domain.BookingLinks) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, state, payment_date, payment_amount_cents, has_insurance, luggage_kg, customer_id, flight_id, creation_time, update_time, deletion_time`

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.State, &b.PaymentDate, &b.PaymentAmountCents, &b.Insurance, &b.LuggageKg, &b.CustomerID, &b.FlightID, &b.CreationTime, &b.UpdateTime, &b.DeletionTime); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListActive(ctx context.Context, page, size int) ([]domain.Booking, int64, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM booking WHERE deletion_time IS NULL ORDER BY creation_time, id LIMIT $1 OFFSET $2`, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM booking WHERE deletion_time IS NULL`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM booking WHERE id=$1`, id))
}

func (r *PGBookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO booking (id, state, payment_date, payment_amount_cents, has_insurance, luggage_kg)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING creation_time, update_time`, b.ID, b.State, b.PaymentDate, b.PaymentAmountCents, b.Insurance, b.LuggageKg).
		Scan(&b.CreationTime, &b.UpdateTime)
}

func (r *PGBookingRepository) Update(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE booking SET state=$1, payment_date=$2, payment_amount_cents=$3, has_insurance=$4, luggage_kg=$5, update_time=now()
		WHERE id=$6 RETURNING `+bookingColumns, b.State, b.PaymentDate, b.PaymentAmountCents, b.Insurance, b.LuggageKg, b.ID)
	return scanBooking(row)
}

func (r *PGBookingRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE booking SET deletion_time=COALESCE(deletion_time, now()), update_time=now()
		WHERE id=$1 RETURNING `+bookingColumns, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) SetLinks(ctx context.Context, id uuid.UUID, links domain.BookingLinks) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE booking SET customer_id=$1, flight_id=$2, update_time=now()
		WHERE id=$3 RETURNING `+bookingColumns, links.CustomerID, links.FlightID, id)
	return scanBooking(row)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
