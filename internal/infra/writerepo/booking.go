package writerepo

import (
	"context"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/infra"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Create inserts the booking row together with its occupied hour range. The
// range is computed in SQL from the same start/duration the row stores, so
// row and constraint can never disagree. bookings_no_overlap (an exclusion
// constraint over active rows) rejects any insert whose inclusive
// [start, start+duration] range touches an existing active booking on the
// same date; the violation surfaces as a CONFLICT-kind error.
func (r *BookingRepository) Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) (int64, time.Time, error) {
	const query = `
		INSERT INTO bookings (
			customer_ref, customer_name, customer_phone,
			booking_date, start_hour, duration_hours,
			total_price_cents, hour_range, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, int4range($5, $5 + $6, '[]'), TRUE)
		RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)
	err := tx.QueryRow(ctx, query,
		b.CustomerRef(),
		b.CustomerName(),
		b.CustomerPhone(),
		b.Day().String(),
		b.Start().Hour(),
		b.Duration().Hours(),
		b.TotalPrice().Cents(),
	).Scan(&id, &createdAt)
	if err != nil {
		return 0, time.Time{}, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, createdAt, nil
}

// InsertLineItems persists the service bundle in request order. Runs inside
// the commit transaction: if any insert fails the booking row rolls back too.
func (r *BookingRepository) InsertLineItems(ctx context.Context, tx infra.DBTX, bookingID int64, items []booking.LineItem) error {
	const query = `
		INSERT INTO booking_line_items (
			booking_id, position, service_name, service_code, unit_price_cents, duration_hours
		)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i, li := range items {
		if _, err := tx.Exec(ctx, query,
			bookingID,
			i,
			li.ServiceName(),
			li.ServiceCode(),
			li.UnitPrice().Cents(),
			li.DurationHours(),
		); err != nil {
			return infra.WrapRepoErr("failed to insert booking line item", err)
		}
	}
	return nil
}
