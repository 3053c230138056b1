package booking

import (
	"time"
)

// Booking is one confirmed reservation of a slot. The ledger assigns the id
// on commit; the customer name and phone are a snapshot taken at booking time
// and are never re-synced with the customer profile.
type Booking struct {
	id            int64
	customerRef   string
	customerName  string
	customerPhone string
	day           Day
	start         StartHour
	duration      Duration
	totalPrice    Money
	lineItems     []LineItem
	active        bool
	createdAt     time.Time
}

func NewBooking(
	customerRef, customerName, customerPhone string,
	day Day,
	start StartHour,
	duration Duration,
	totalPrice Money,
	lineItems []LineItem,
) (*Booking, error) {
	if customerRef == "" {
		return nil, ErrMissingCustomer
	}

	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)

	return &Booking{
		customerRef:   customerRef,
		customerName:  customerName,
		customerPhone: customerPhone,
		day:           day,
		start:         start,
		duration:      duration,
		totalPrice:    totalPrice,
		lineItems:     items,
		active:        true,
	}, nil
}

func ReconstructBooking(
	id int64,
	customerRef, customerName, customerPhone string,
	day Day,
	start StartHour,
	duration Duration,
	totalPrice Money,
	lineItems []LineItem,
	active bool,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerRef:   customerRef,
		customerName:  customerName,
		customerPhone: customerPhone,
		day:           day,
		start:         start,
		duration:      duration,
		totalPrice:    totalPrice,
		lineItems:     lineItems,
		active:        active,
		createdAt:     createdAt,
	}
}

// Occupies returns the inclusive hour range this booking blocks. The no-overlap
// invariant holds when the ranges of all active bookings on a day are pairwise
// disjoint.
func (b *Booking) Occupies() HourRange {
	return OccupiedRange(b.start, b.duration)
}

// Cancel flips the soft-delete flag. Cancelled bookings no longer count
// toward occupancy.
func (b *Booking) Cancel() {
	b.active = false
}

func (b *Booking) ID() int64             { return b.id }
func (b *Booking) CustomerRef() string   { return b.customerRef }
func (b *Booking) CustomerName() string  { return b.customerName }
func (b *Booking) CustomerPhone() string { return b.customerPhone }
func (b *Booking) Day() Day              { return b.day }
func (b *Booking) Start() StartHour      { return b.start }
func (b *Booking) Duration() Duration    { return b.duration }
func (b *Booking) TotalPrice() Money     { return b.totalPrice }
func (b *Booking) IsActive() bool        { return b.active }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

func (b *Booking) LineItems() []LineItem {
	items := make([]LineItem, len(b.lineItems))
	copy(items, b.lineItems)
	return items
}
