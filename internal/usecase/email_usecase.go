package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

// EmailIntegrationView is one connected mailbox with its live unread count.
type EmailIntegrationView struct {
	ID           int64  `json:"id"`
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
	LastSync     string `json:"last_sync,omitempty"`
	UnreadCount  int    `json:"unread_count"`
}

// EmailStats summarizes a mailbox.
type EmailStats struct {
	EmailAddress  string `json:"email_address"`
	MessagesTotal int    `json:"messages_total"`
	ThreadsTotal  int    `json:"threads_total"`
	UnreadCount   int    `json:"unread_count"`
	LastSync      string `json:"last_sync,omitempty"`
}

// SyncResult reports the outcome of a provider sync.
type SyncResult struct {
	Status   entity.ConnectionStatus `json:"status"`
	LastSync string                  `json:"last_sync,omitempty"`
}

// EmailUsecase is the read facade over connected Gmail accounts.
type EmailUsecase interface {
	// Integrations lists the user's mailbox integrations with unread counts.
	Integrations(ctx context.Context, userID entity.UserID) ([]*EmailIntegrationView, error)

	// Connect binds an existing gmail credential to a mailbox integration,
	// reusing the user's existing mailbox integration if one exists.
	Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error)

	// Emails lists messages from one mailbox.
	Emails(ctx context.Context, userID entity.UserID, integrationID int64, maxResults int, query string) ([]*service.EmailMessage, error)

	// Stats summarizes one mailbox.
	Stats(ctx context.Context, userID entity.UserID, integrationID int64) (*EmailStats, error)

	// Sync probes the mailbox and records last_sync and status on the
	// integration.
	Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*SyncResult, error)
}
