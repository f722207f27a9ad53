package domain

import "time"

// Token is an opaque bearer credential bound to exactly one user.
// Deleting it logs the user out.
type Token struct {
	Key       string
	UserID    string
	ExpiresAt time.Time
}
