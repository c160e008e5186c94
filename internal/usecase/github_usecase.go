package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

// GitHubStats summarizes the connected GitHub account.
type GitHubStats struct {
	Username          string `json:"username"`
	Name              string `json:"name"`
	PublicReposCount  int    `json:"public_repos_count"`
	PrivateReposCount int    `json:"private_repos_count"`
	TotalReposCount   int    `json:"total_repos_count"`
	Followers         int    `json:"followers"`
	Following         int    `json:"following"`
	LastSync          string `json:"last_sync,omitempty"`
}

// GitHubIntegrationView is one connected GitHub account as the listing
// endpoint renders it.
type GitHubIntegrationView struct {
	ID       int64  `json:"id"`
	Username string `json:"github_username"`
	Status   string `json:"status"`
	LastSync string `json:"last_sync,omitempty"`
}

// GitHubUsecase is the read facade over the connected GitHub account.
type GitHubUsecase interface {
	// Integrations lists the user's GitHub integrations.
	Integrations(ctx context.Context, userID entity.UserID) ([]*GitHubIntegrationView, error)

	// Connect binds an existing GitHub credential to an integration, probing
	// the account so the stored config reflects reality.
	Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error)

	// Repos lists the account's repositories. Visibility is "all", "public"
	// or "private".
	Repos(ctx context.Context, userID entity.UserID, integrationID int64, visibility string) ([]*service.GitHubRepo, error)

	// Stats summarizes the account, counting private repositories from the
	// repository listing.
	Stats(ctx context.Context, userID entity.UserID, integrationID int64) (*GitHubStats, error)

	// Sync probes the account and records last_sync and status on the
	// integration.
	Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*SyncResult, error)
}
