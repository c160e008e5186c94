package repository

import (
	"context"
	"errors"

	"devfriend/internal/domain/entity"
)

// ErrIntegrationNotFound is returned when an integration does not exist.
var ErrIntegrationNotFound = errors.New("integration not found")

// IntegrationUpdate carries a partial update for an integration.
// Nil fields are left unchanged.
type IntegrationUpdate struct {
	SecretID    *int64
	ServiceType *entity.ServiceType
	Config      entity.IntegrationConfig
	IsActive    *bool
}

// IntegrationRepository defines the interface for integration persistence.
// All lookups are scoped to the owning user so that cross-user access is
// indistinguishable from a missing row.
type IntegrationRepository interface {
	// Create persists a new integration and fills in the generated ID.
	Create(ctx context.Context, integration *entity.Integration) error

	// FindByID retrieves an integration owned by the given user.
	FindByID(ctx context.Context, id int64, userID entity.UserID) (*entity.Integration, error)

	// FindByUser retrieves all of a user's integrations, newest first.
	FindByUser(ctx context.Context, userID entity.UserID) ([]*entity.Integration, error)

	// FindByUserAndType retrieves a user's integrations of one service type,
	// newest first.
	FindByUserAndType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Integration, error)

	// Update applies a partial update and returns the refreshed integration.
	Update(ctx context.Context, id int64, userID entity.UserID, update IntegrationUpdate) (*entity.Integration, error)

	// Delete removes an integration owned by the given user. The referenced
	// secret is left untouched.
	Delete(ctx context.Context, id int64, userID entity.UserID) error
}
