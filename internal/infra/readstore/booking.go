package readstore

import (
	"context"
	"fmt"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/infra"
	"barber-booking/internal/usecase/queries"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// ListActiveByDay returns the active bookings for the day ordered by start
// hour ascending, line items attached in their stored order.
func (r *BookingReadStore) ListActiveByDay(ctx context.Context, day booking.Day) ([]*queries.BookingView, error) {
	const query = `
		SELECT id, customer_ref, customer_name, customer_phone,
		       booking_date::text, start_hour, duration_hours, total_price_cents, created_at
		FROM bookings
		WHERE booking_date = $1 AND is_active
		ORDER BY start_hour ASC`

	rows, err := r.db.Query(ctx, query, day.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var (
		views []*queries.BookingView
		ids   []int64
	)
	for rows.Next() {
		var (
			v         queries.BookingView
			startHour int
		)
		if err := rows.Scan(
			&v.ID, &v.CustomerRef, &v.CustomerName, &v.CustomerPhone,
			&v.Date, &startHour, &v.DurationHours, &v.TotalPriceCents, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		v.StartTime = fmt.Sprintf("%02d:00", startHour)
		v.LineItems = []queries.LineItemView{}
		views = append(views, &v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	if len(views) == 0 {
		return views, nil
	}

	if err := r.attachLineItems(ctx, views, ids); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *BookingReadStore) attachLineItems(ctx context.Context, views []*queries.BookingView, ids []int64) error {
	const query = `
		SELECT booking_id, service_name, service_code, unit_price_cents, duration_hours
		FROM booking_line_items
		WHERE booking_id = ANY($1)
		ORDER BY booking_id, position ASC`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list booking line items", err)
	}
	defer rows.Close()

	byID := make(map[int64]*queries.BookingView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}

	for rows.Next() {
		var (
			bookingID int64
			item      queries.LineItemView
		)
		if err := rows.Scan(&bookingID, &item.ServiceName, &item.ServiceCode, &item.UnitPriceCents, &item.DurationHours); err != nil {
			return infra.WrapRepoErr("failed to scan line item row", err)
		}
		if v, ok := byID[bookingID]; ok {
			v.LineItems = append(v.LineItems, item)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate line item rows", err)
	}
	return nil
}

// OccupiedSpansByDay is the availability projection: start and duration of
// every active booking on the day.
func (r *BookingReadStore) OccupiedSpansByDay(ctx context.Context, day booking.Day) ([]queries.OccupiedSpan, error) {
	const query = `
		SELECT start_hour, duration_hours
		FROM bookings
		WHERE booking_date = $1 AND is_active
		ORDER BY start_hour ASC`

	rows, err := r.db.Query(ctx, query, day.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupied spans", err)
	}
	defer rows.Close()

	var spans []queries.OccupiedSpan
	for rows.Next() {
		var s queries.OccupiedSpan
		if err := rows.Scan(&s.StartHour, &s.DurationHours); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied span", err)
		}
		spans = append(spans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied spans", err)
	}
	return spans, nil
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)
