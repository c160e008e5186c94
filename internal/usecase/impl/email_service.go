package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "devfriend/internal/delivery/context"
	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/domain/service"
	"devfriend/internal/errors"
	"devfriend/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultEmailPageSize = 10
	maxEmailPageSize     = 100
)

// emailService implements the EmailUsecase interface.
type emailService struct {
	resolver        *CredentialResolver
	integrationRepo repository.IntegrationRepository
	secretRepo      repository.SecretRepository
	clientFactory   service.GmailClientFactory
	logger          *slog.Logger
}

// EmailServiceParams holds dependencies for emailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	Resolver        *CredentialResolver
	IntegrationRepo repository.IntegrationRepository
	SecretRepo      repository.SecretRepository
	ClientFactory   service.GmailClientFactory
	Logger          *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	return &emailService{
		resolver:        params.Resolver,
		integrationRepo: params.IntegrationRepo,
		secretRepo:      params.SecretRepo,
		clientFactory:   params.ClientFactory,
		logger:          params.Logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// client resolves an integration's credentials into a ready Gmail client.
func (srv *emailService) client(ctx context.Context, userID entity.UserID, integrationID int64) (*entity.Integration, service.GmailClient, error) {
	integration, creds, err := srv.resolver.Resolve(ctx, userID, integrationID, entity.ServiceTypeGmail,
		"client_id", "client_secret", "refresh_token")
	if err != nil {
		return nil, nil, err
	}

	client := srv.clientFactory.New(service.GmailCredentials{
		ClientID:     creds["client_id"],
		ClientSecret: creds["client_secret"],
		RefreshToken: creds["refresh_token"],
	})

	return integration, client, nil
}

// Integrations lists the user's mailbox integrations with unread counts.
// A broken mailbox still shows up in the listing, just without a count.
func (srv *emailService) Integrations(ctx context.Context, userID entity.UserID) ([]*usecase.EmailIntegrationView, error) {
	integrations, err := srv.integrationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	views := make([]*usecase.EmailIntegrationView, 0, len(integrations))
	for _, integration := range integrations {
		if !integration.IsActive || !entity.ServiceTypeGmail.InFamily(integration.ServiceType) {
			continue
		}

		view := &usecase.EmailIntegrationView{
			ID:           integration.ID,
			EmailAddress: integration.Config.String(entity.ConfigKeyEmailAddress),
			Status:       string(integration.Config.Status()),
			LastSync:     integration.Config.String(entity.ConfigKeyLastSync),
		}

		if _, client, err := srv.client(ctx, userID, integration.ID); err == nil {
			if count, err := client.UnreadCount(ctx); err == nil {
				view.UnreadCount = count
			} else {
				srv.log(ctx).Warn("Unread count fetch failed",
					slog.Int64("integrationID", integration.ID),
					slog.Any("error", err),
				)
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// Connect binds an existing gmail credential to a mailbox integration.
func (srv *emailService) Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error) {
	secret, err := srv.secretRepo.FindByID(ctx, secretID)
	if err != nil {
		if errors.Is(err, repository.ErrSecretNotFound) {
			return nil, domainerrors.ErrSecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find secret")
	}
	// A foreign secret is reported as missing, same as every other lookup.
	if secret.UserID != userID {
		return nil, domainerrors.ErrSecretNotFound
	}
	if !entity.ServiceTypeGmail.InFamily(secret.ServiceType) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("secret is not a mailbox credential")
	}

	existing, err := srv.integrationRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeGmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing integrations")
	}

	if len(existing) > 0 {
		updated, err := srv.integrationRepo.Update(ctx, existing[0].ID, userID, repository.IntegrationUpdate{
			SecretID: &secretID,
		})

		return updated, errors.Wrap(err, "failed to rebind integration")
	}

	integration := &entity.Integration{
		UserID:      userID,
		ServiceType: entity.ServiceTypeGmail,
		SecretID:    &secretID,
		Config:      entity.IntegrationConfig{},
		IsActive:    true,
	}
	if err := srv.integrationRepo.Create(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to create integration")
	}

	return integration, nil
}

// Emails lists messages from one mailbox.
func (srv *emailService) Emails(ctx context.Context, userID entity.UserID, integrationID int64, maxResults int, query string) ([]*service.EmailMessage, error) {
	_, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	messages, err := client.Messages(ctx, clampPageSize(maxResults, defaultEmailPageSize, maxEmailPageSize), query)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch messages: " + err.Error())
	}

	return messages, nil
}

// Stats summarizes one mailbox.
func (srv *emailService) Stats(ctx context.Context, userID entity.UserID, integrationID int64) (*usecase.EmailStats, error) {
	integration, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	profile, err := client.Profile(ctx)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch mailbox profile: " + err.Error())
	}

	unread, err := client.UnreadCount(ctx)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch unread count: " + err.Error())
	}

	return &usecase.EmailStats{
		EmailAddress:  profile.EmailAddress,
		MessagesTotal: profile.MessagesTotal,
		ThreadsTotal:  profile.ThreadsTotal,
		UnreadCount:   unread,
		LastSync:      integration.Config.String(entity.ConfigKeyLastSync),
	}, nil
}

// Sync probes the mailbox and records the outcome on the integration.
func (srv *emailService) Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*usecase.SyncResult, error) {
	integration, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		// Credential problems are the user's to fix; don't overwrite the
		// recorded status with them.
		return nil, err
	}

	profile, err := client.Profile(ctx)
	if err != nil {
		srv.recordSyncStatus(ctx, integration, userID, entity.ConnectionStatusError, "")

		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("mailbox sync failed: " + err.Error())
	}

	lastSync := time.Now().UTC().Format(time.RFC3339)
	config := integration.Config.Clone()
	config[entity.ConfigKeyEmailAddress] = profile.EmailAddress
	config[entity.ConfigKeyStatus] = string(entity.ConnectionStatusConnected)
	config[entity.ConfigKeyLastSync] = lastSync
	if _, err := srv.integrationRepo.Update(ctx, integration.ID, userID, repository.IntegrationUpdate{Config: config}); err != nil {
		return nil, errors.Wrap(err, "failed to record sync result")
	}

	return &usecase.SyncResult{
		Status:   entity.ConnectionStatusConnected,
		LastSync: lastSync,
	}, nil
}

// recordSyncStatus best-effort writes a status onto the integration config.
func (srv *emailService) recordSyncStatus(ctx context.Context, integration *entity.Integration, userID entity.UserID, status entity.ConnectionStatus, lastSync string) {
	config := integration.Config.Clone()
	config[entity.ConfigKeyStatus] = string(status)
	if lastSync != "" {
		config[entity.ConfigKeyLastSync] = lastSync
	}

	if _, err := srv.integrationRepo.Update(ctx, integration.ID, userID, repository.IntegrationUpdate{Config: config}); err != nil {
		srv.log(ctx).Warn("Failed to record sync status",
			slog.Int64("integrationID", integration.ID),
			slog.Any("error", err),
		)
	}
}

// clampPageSize normalizes a requested page size into [1, max].
func clampPageSize(requested, fallback, max int) int {
	if requested <= 0 {
		return fallback
	}
	if requested > max {
		return max
	}

	return requested
}
