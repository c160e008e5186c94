package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

// SlackIntegrationView is one connected workspace as the listing endpoint
// renders it.
type SlackIntegrationView struct {
	ID            int64  `json:"id"`
	WorkspaceName string `json:"workspace_name"`
	TeamID        string `json:"team_id,omitempty"`
	Status        string `json:"status"`
	LastSync      string `json:"last_sync,omitempty"`
}

// MessagesUsecase is the read facade over the connected Slack workspace.
type MessagesUsecase interface {
	// Integrations lists the user's workspace integrations.
	Integrations(ctx context.Context, userID entity.UserID) ([]*SlackIntegrationView, error)

	// Connect binds an existing Slack credential to an integration, probing
	// the workspace so the stored config reflects reality.
	Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error)

	// Workspace fetches metadata for the connected workspace.
	Workspace(ctx context.Context, userID entity.UserID, integrationID int64) (*service.SlackTeam, error)

	// Channels lists conversations in the connected workspace.
	Channels(ctx context.Context, userID entity.UserID, integrationID int64, limit int) ([]*service.SlackChannel, error)

	// History lists recent messages from one conversation.
	History(ctx context.Context, userID entity.UserID, integrationID int64, channelID string, limit int) ([]*service.SlackMessage, error)

	// Sync probes the workspace and records last_sync and status on the
	// integration.
	Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*SyncResult, error)
}
