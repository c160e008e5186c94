package repository

import (
	"context"
	"errors"

	"devfriend/internal/domain/entity"
)

// ErrSecretNotFound is returned when a secret does not exist.
var ErrSecretNotFound = errors.New("secret not found")

// SecretRepository defines the interface for encrypted credential persistence.
//
// Implementations encrypt the payload on every write. Reads are asymmetric on
// purpose: only FindByID returns the decrypted payload, every multi-row read
// masks the payload with entity.RedactedValue so that plaintext credentials
// never leak into listings.
type SecretRepository interface {
	// Create persists a new secret, encrypting its payload, and fills in the
	// generated ID.
	Create(ctx context.Context, secret *entity.Secret) error

	// FindByID retrieves a single secret with its payload decrypted.
	FindByID(ctx context.Context, id int64) (*entity.Secret, error)

	// FindByUser retrieves all secrets for a user, newest first, with
	// payloads redacted.
	FindByUser(ctx context.Context, userID entity.UserID) ([]*entity.Secret, error)

	// FindByUserAndType retrieves a user's secrets of one service type,
	// newest first, with payloads redacted.
	FindByUserAndType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Secret, error)

	// Update modifies a secret's name, type and payload, re-encrypting the
	// payload.
	Update(ctx context.Context, secret *entity.Secret) error

	// Delete removes a secret by its ID.
	Delete(ctx context.Context, id int64) error
}
