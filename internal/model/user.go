// Package model defines domain entities for the application.
package model

import "time"

// User represents a stored customer credential record.
// The password hash is never serialized to API clients.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
