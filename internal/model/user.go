// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash is write-only: it is tagged out of JSON so no handler can
// leak it by serializing the entity directly.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated user reference attached to a request after
// successful token verification.
type Identity struct {
	UserID string
}
