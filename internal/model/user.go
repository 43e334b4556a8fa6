// Package model defines domain entities for the application.
package model

import "time"

// User is a registered account. Usernames are unique; accounts are
// immutable after registration (no update or delete flows exist).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller resolved by the auth middleware.
// It is derived from a validated token cross-checked against the user store.
type Identity struct {
	UserID   string
	Username string
	Name     string
}
