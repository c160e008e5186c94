package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
)

// CreateSecretInput defines the data required to store a new secret.
// Value is the plaintext JSON payload; it is encrypted before it reaches
// the database.
type CreateSecretInput struct {
	Name        string
	ServiceType entity.ServiceType
	Value       string
}

// UpdateSecretInput carries a partial secret update. Nil fields are left
// unchanged.
type UpdateSecretInput struct {
	Name        *string
	ServiceType *entity.ServiceType
	Value       *string
}

// SecretUsecase defines the interface for secret management operations.
//
// Every operation is scoped to the calling user. A secret belonging to
// another user is reported as not found, never as forbidden, so the API
// does not reveal which IDs exist.
type SecretUsecase interface {
	// Create stores a new secret and returns it with the payload redacted.
	Create(ctx context.Context, userID entity.UserID, input CreateSecretInput) (*entity.Secret, error)

	// List returns the user's secrets, newest first, payloads redacted.
	List(ctx context.Context, userID entity.UserID) ([]*entity.Secret, error)

	// ListByType returns the user's secrets of one type, payloads redacted.
	ListByType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Secret, error)

	// Get returns one secret with its payload decrypted. This is the only
	// read path that reveals plaintext.
	Get(ctx context.Context, userID entity.UserID, id int64) (*entity.Secret, error)

	// Update applies a partial update and returns the refreshed secret with
	// the payload redacted.
	Update(ctx context.Context, userID entity.UserID, id int64, input UpdateSecretInput) (*entity.Secret, error)

	// Delete removes a secret.
	Delete(ctx context.Context, userID entity.UserID, id int64) error
}
