package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zvrva/flightlog/internal/domain"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	flight.ID = uuid.NewString()
	return r.db.QueryRow(ctx, `INSERT INTO flights (id, owner_id, flight_date, flight_number, from_airport, to_airport, from_code, to_code, dep_time, arr_time, duration, airline, aircraft, registration, seat_number, seat_type, flight_class, flight_reason, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING created_at, updated_at`,
		flight.ID, flight.OwnerID, flight.Date, flight.FlightNumber, flight.From, flight.To, flight.FromCode, flight.ToCode,
		flight.DepTime, flight.ArrTime, flight.Duration, flight.Airline, flight.Aircraft, flight.Registration,
		flight.SeatNumber, flight.SeatType, flight.FlightClass, flight.FlightReason, flight.Note).
		Scan(&flight.CreatedAt, &flight.UpdatedAt)
}

// ListByOwner returns the owner's flights in insertion order, which the
// aggregation layer relies on for stable tie-breaking.
func (r *PGFlightRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, owner_id, flight_date, flight_number, from_airport, to_airport, from_code, to_code, dep_time, arr_time, duration, airline, aircraft, registration, seat_number, seat_type, flight_class, flight_reason, note, created_at, updated_at FROM flights WHERE owner_id=$1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Date, &f.FlightNumber, &f.From, &f.To, &f.FromCode, &f.ToCode, &f.DepTime, &f.ArrTime, &f.Duration, &f.Airline, &f.Aircraft, &f.Registration, &f.SeatNumber, &f.SeatType, &f.FlightClass, &f.FlightReason, &f.Note, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
