// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserID identifies a user account. It is a dedicated type so that user
// identifiers cannot be mixed up with other integer IDs.
type UserID int64

// Int64 returns the raw database value of the identifier.
func (id UserID) Int64() int64 {
	return int64(id)
}

// User represents a registered account that owns secrets and integrations.
type User struct {
	ID           UserID    // Auto-incrementing identifier for the user.
	Email        string    // The user's login identifier, unique across the system.
	PasswordHash string    // Bcrypt hash of the user's password. Never exposed through the API.
	IsActive     bool      // Inactive users cannot authenticate.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
