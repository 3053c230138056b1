package writerepo

import (
	"context"
	"time"

	"barber-booking/internal/domain/customer"
	"barber-booking/internal/infra"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// FindOrCreate is an idempotent lookup-or-insert keyed on the external
// customer ref. The no-op DO UPDATE makes RETURNING yield the existing row on
// conflict; an existing customer's name and phone are left untouched, since
// bookings carry their own snapshot.
func (r *CustomerRepository) FindOrCreate(ctx context.Context, tx infra.DBTX, ref, name, phone string) (*customer.Customer, error) {
	const query = `
		INSERT INTO customers (id, customer_ref, name, phone)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_ref) DO UPDATE SET customer_ref = EXCLUDED.customer_ref
		RETURNING id, customer_ref, name, phone, created_at`

	var (
		id        uuid.UUID
		gotRef    string
		gotName   string
		gotPhone  string
		createdAt time.Time
	)
	err := tx.QueryRow(ctx, query, uuid.New(), ref, name, phone).
		Scan(&id, &gotRef, &gotName, &gotPhone, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find or create customer", err)
	}

	return customer.Reconstruct(id, gotRef, gotName, gotPhone, createdAt), nil
}
