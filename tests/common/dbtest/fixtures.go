//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCustomer(t *testing.T, db DBLike, ref, name, phone string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, customer_ref, name, phone) VALUES ($1, $2, $3, $4) ON CONFLICT (customer_ref) DO NOTHING",
		customerID, ref, name, phone)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM customers WHERE customer_ref = $1", ref).Scan(&customerID)
		require.NoError(t, err)
	}

	return customerID
}

// CreateTestBooking seeds a booking row directly, bypassing the usecase layer.
// The customer must already exist.
func CreateTestBooking(t *testing.T, db DBLike, ref, date string, startHour, durationHours int) int64 {
	t.Helper()

	ctx := context.Background()
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO bookings (
			customer_ref, customer_name, customer_phone,
			booking_date, start_hour, duration_hours,
			total_price_cents, hour_range, is_active
		)
		SELECT c.customer_ref, c.name, c.phone, $2, $3, $4, 0, int4range($3, $3 + $4, '[]'), TRUE
		FROM customers c WHERE c.customer_ref = $1
		RETURNING id`,
		ref, date, startHour, durationHours).Scan(&id)
	require.NoError(t, err, "Failed to seed booking")

	return id
}

func CountActiveBookings(t *testing.T, db DBLike, date string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE booking_date = $1 AND is_active", date).Scan(&count)
	require.NoError(t, err)
	return count
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
