package usecase

import (
	"context"
	"time"

	"devfriend/internal/domain/entity"
)

// CreateIntegrationInput defines the data required to connect a service.
type CreateIntegrationInput struct {
	ServiceType entity.ServiceType
	SecretID    *int64
	Config      entity.IntegrationConfig
}

// UpdateIntegrationInput carries a partial integration update. Nil fields
// are left unchanged.
type UpdateIntegrationInput struct {
	SecretID *int64
	Config   entity.IntegrationConfig
	IsActive *bool
}

// IntegrationView is the API-facing shape of an integration, with common
// config fields lifted to the top level.
type IntegrationView struct {
	ID             int64                    `json:"id"`
	ServiceType    entity.ServiceType       `json:"service_type"`
	Provider       entity.ServiceType       `json:"provider"`
	SecretID       *int64                   `json:"secret_id"`
	IsActive       bool                     `json:"is_active"`
	Status         string                   `json:"status"`
	LastSync       string                   `json:"last_sync,omitempty"`
	EmailAddress   string                   `json:"email_address,omitempty"`
	GitHubUsername string                   `json:"github_username,omitempty"`
	WorkspaceName  string                   `json:"workspace_name,omitempty"`
	TeamID         string                   `json:"team_id,omitempty"`
	Config         entity.IntegrationConfig `json:"config"`
	CreatedAt      string                   `json:"created_at"`
}

// NewIntegrationView maps an integration to its API-facing shape.
func NewIntegrationView(integration *entity.Integration) *IntegrationView {
	return &IntegrationView{
		ID:             integration.ID,
		ServiceType:    integration.ServiceType,
		Provider:       integration.ServiceType,
		SecretID:       integration.SecretID,
		IsActive:       integration.IsActive,
		Status:         string(integration.Config.Status()),
		LastSync:       integration.Config.String(entity.ConfigKeyLastSync),
		EmailAddress:   integration.Config.String(entity.ConfigKeyEmailAddress),
		GitHubUsername: integration.Config.String(entity.ConfigKeyGitHubUsername),
		WorkspaceName:  integration.Config.String(entity.ConfigKeyWorkspaceName),
		TeamID:         integration.Config.String(entity.ConfigKeyTeamID),
		Config:         integration.Config.Clone(),
		CreatedAt:      integration.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// IntegrationUsecase defines the interface for integration management.
// Cross-user access is reported as not found.
type IntegrationUsecase interface {
	// Create connects a service. If the user already has an integration of
	// the same service type, that integration is updated in place and
	// returned, keeping one integration per service.
	Create(ctx context.Context, userID entity.UserID, input CreateIntegrationInput) (*entity.Integration, error)

	// List returns the user's integrations, optionally filtered by type.
	List(ctx context.Context, userID entity.UserID, serviceType *entity.ServiceType) ([]*entity.Integration, error)

	// Get returns one integration.
	Get(ctx context.Context, userID entity.UserID, id int64) (*entity.Integration, error)

	// Update applies a partial update and returns the refreshed integration.
	Update(ctx context.Context, userID entity.UserID, id int64, input UpdateIntegrationInput) (*entity.Integration, error)

	// Delete removes an integration. The backing secret is kept.
	Delete(ctx context.Context, userID entity.UserID, id int64) error
}
