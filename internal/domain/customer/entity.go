// Package customer models the identity snapshot the booking core reads.
// Customers are created lazily on a first booking attempt and owned by the
// identity collaborator; the core never mutates them.
package customer

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	id        uuid.UUID
	ref       string
	name      string
	phone     string
	createdAt time.Time
}

func Reconstruct(id uuid.UUID, ref, name, phone string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		ref:       ref,
		name:      name,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Ref() string          { return c.ref }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
