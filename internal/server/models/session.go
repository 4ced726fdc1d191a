package models

import "time"

// Session correlates an issued token with its owning user and validity
// window. Rows are append-only; a user may hold any number of concurrent
// sessions.
type Session struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
