package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store persists username/password-hash pairs. Username lookups are
// case-sensitive exact matches; uniqueness is enforced at insert time
// by the storage layer, not by callers.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, username, passwordHash string) (*User, error)
}
