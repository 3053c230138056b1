package writerepo

import (
	"context"
	"time"

	"barber-booking/internal/infra"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues an outbound notification for the delivery worker.
// Callers on the booking path treat failures as best-effort: the commit has
// already happened by the time a job is written.
func (r *NotificationRepository) CreateJob(ctx context.Context, db infra.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')`

	if _, err := db.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
