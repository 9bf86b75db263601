package ticket

import (
	"context"
	"errors"
)

var (
	// ErrNotFound means the id parsed but matches no ticket.
	ErrNotFound = errors.New("ticket not found")
	// ErrInvalidID means the id is not a well-formed ticket id at all.
	// Callers that don't care about the distinction can treat both as
	// absence.
	ErrInvalidID = errors.New("invalid ticket id")
)

// Store serves the ticket catalog. The catalog is read-only from this
// service's perspective; rows are seeded by the startup migration.
type Store interface {
	ListAll(ctx context.Context) ([]Ticket, error)
	FindByID(ctx context.Context, id string) (*Ticket, error)
}
