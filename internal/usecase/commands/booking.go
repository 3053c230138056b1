package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/domain/customer"
	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/clock"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidDate             = errs.New("invalid date")
	ErrInvalidStartTime        = errs.New("invalid start time")
	ErrInvalidDuration         = errs.New("invalid duration")
	ErrInvalidInput            = errs.New("invalid booking input")
	ErrSlotConflict            = errs.New("slot conflict")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type LineItemParams struct {
	ServiceName    string
	ServiceCode    string
	UnitPriceCents int64
	DurationHours  int
}

type CommitBookingParams struct {
	Date            string
	StartTime       string
	DurationHours   int
	CustomerRef     string
	CustomerName    string
	CustomerPhone   string
	LineItems       []LineItemParams
	TotalPriceCents int64
}

type BookingRepository interface {
	// Create inserts the booking row. The store's exclusion constraint on the
	// occupied hour range arbitrates concurrent commits; a lost race comes
	// back as a CONFLICT-kind repository error.
	Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) (int64, time.Time, error)
	InsertLineItems(ctx context.Context, tx infra.DBTX, bookingID int64, items []booking.LineItem) error
}

type CustomerRepository interface {
	FindOrCreate(ctx context.Context, tx infra.DBTX, ref, name, phone string) (*customer.Customer, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type BookingCommands interface {
	// CommitBooking atomically validates and persists a new booking, or
	// rejects it. On success the returned view carries the assigned id and
	// the persisted line items.
	CommitBooking(ctx context.Context, params CommitBookingParams) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	customerRepo     CustomerRepository
	notificationRepo NotificationRepository
	db               *pgxpool.Pool
	clock            clock.Clock
	hours            schedule.Hours
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	notificationRepo NotificationRepository,
	db *pgxpool.Pool,
	clk clock.Clock,
	hours schedule.Hours,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		customerRepo:     customerRepo,
		notificationRepo: notificationRepo,
		db:               db,
		clock:            clk,
		hours:            hours,
	}
}

func (c *bookingCommandsImpl) CommitBooking(ctx context.Context, params CommitBookingParams) (*queries.BookingView, error) {
	entity, err := c.validate(params)
	if err != nil {
		return nil, err
	}

	view, err := c.executeCommit(ctx, entity)
	if err != nil {
		return nil, err
	}

	c.notifyCreated(ctx, view)

	return view, nil
}

// validate builds the domain entity from caller input. Everything here runs
// before the store is touched; only the overlap check is left to the store.
func (c *bookingCommandsImpl) validate(params CommitBookingParams) (*booking.Booking, error) {
	day, err := booking.ParseDay(params.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	start, err := booking.ParseStartHour(params.StartTime)
	if err != nil {
		return nil, ErrInvalidStartTime
	}
	if !c.hours.ContainsStart(start.Hour()) {
		return nil, ErrInvalidStartTime
	}

	duration, err := booking.NewDuration(params.DurationHours)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	totalPrice, err := booking.NewMoney(params.TotalPriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	items := make([]booking.LineItem, 0, len(params.LineItems))
	for _, li := range params.LineItems {
		item, itemErr := booking.NewLineItem(li.ServiceName, li.ServiceCode, li.UnitPriceCents, li.DurationHours)
		if itemErr != nil {
			return nil, errs.Mark(itemErr, ErrInvalidInput)
		}
		items = append(items, item)
	}

	entity, err := booking.NewBooking(
		params.CustomerRef,
		params.CustomerName,
		params.CustomerPhone,
		day, start, duration, totalPrice, items,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	return entity, nil
}

// executeCommit runs the booking row and its line items as one transaction.
// Any failure after the insert rolls the whole commit back, so no booking
// ever exists without its line items.
func (c *bookingCommandsImpl) executeCommit(ctx context.Context, entity *booking.Booking) (*queries.BookingView, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback booking transaction", "error", rollbackErr)
		}
	}()

	if _, err = c.customerRepo.FindOrCreate(ctx, tx, entity.CustomerRef(), entity.CustomerName(), entity.CustomerPhone()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	id, createdAt, err := c.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err = c.bookingRepo.InsertLineItems(ctx, tx, id, entity.LineItems()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err = tx.Commit(ctx); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return toBookingView(id, createdAt, entity), nil
}

// notifyCreated enqueues the BookingCreated job after the transaction has
// committed. The booking already succeeded, so a failure here is logged and
// swallowed, never surfaced to the caller.
func (c *bookingCommandsImpl) notifyCreated(ctx context.Context, view *queries.BookingView) {
	payload, err := json.Marshal(map[string]any{
		"booking_id":        view.ID,
		"date":              view.Date,
		"start_time":        view.StartTime,
		"duration_hours":    view.DurationHours,
		"customer_name":     view.CustomerName,
		"customer_phone":    view.CustomerPhone,
		"total_price_cents": view.TotalPriceCents,
		"type":              "booking_created",
	})
	if err != nil {
		slog.Warn("failed to encode booking notification payload", "booking_id", view.ID, "error", err)
		return
	}

	if err := c.notificationRepo.CreateJob(ctx, c.db, "telegram", "booking_created", payload, c.clock.Now()); err != nil {
		slog.Warn("failed to enqueue booking notification", "booking_id", view.ID, "error", err)
	}
}

func toBookingView(id int64, createdAt time.Time, entity *booking.Booking) *queries.BookingView {
	items := entity.LineItems()
	itemViews := make([]queries.LineItemView, len(items))
	for i, li := range items {
		itemViews[i] = queries.LineItemView{
			ServiceName:    li.ServiceName(),
			ServiceCode:    li.ServiceCode(),
			UnitPriceCents: li.UnitPrice().Cents(),
			DurationHours:  li.DurationHours(),
		}
	}

	return &queries.BookingView{
		ID:              id,
		Date:            entity.Day().String(),
		StartTime:       entity.Start().String(),
		DurationHours:   entity.Duration().Hours(),
		CustomerRef:     entity.CustomerRef(),
		CustomerName:    entity.CustomerName(),
		CustomerPhone:   entity.CustomerPhone(),
		TotalPriceCents: entity.TotalPrice().Cents(),
		LineItems:       itemViews,
		CreatedAt:       createdAt,
	}
}
