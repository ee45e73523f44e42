package devserver

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("devserver: user not found")
	// ErrEmailTaken is returned when another record already uses the email.
	ErrEmailTaken = errors.New("devserver: email already used")
)

// Store persists user records. List returns records newest registration
// first together with the total record count.
type Store interface {
	List(ctx context.Context, offset, limit int) ([]User, int, error)
	Get(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id string) error
}
