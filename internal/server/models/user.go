// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an identity record. The password is stored only as a bcrypt hash.
// Usernames are unique and compared exactly as stored (no case folding).
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
