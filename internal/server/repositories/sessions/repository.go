package sessions

import (
	"context"
	"time"
)

// Repository is the persistence boundary for session rows.
// Sessions are append-only: nothing in the login flow ever updates or
// deletes them. DeleteExpired exists only for the opt-in cleanup loop.
type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	DeleteExpired(ctx context.Context) (int64, error)
}
