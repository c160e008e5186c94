package impl

import (
	"context"
	"encoding/json"
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
	defaultSlackPageSize = 100
	maxSlackPageSize     = 1000
)

// messagesService implements the MessagesUsecase interface. The workspace
// token prefers the bot token and falls back to the user token, matching how
// Slack scopes the two.
type messagesService struct {
	resolver        *CredentialResolver
	integrationRepo repository.IntegrationRepository
	secretRepo      repository.SecretRepository
	clientFactory   service.SlackClientFactory
	logger          *slog.Logger
}

// MessagesServiceParams holds dependencies for messagesService, injected by Fx.
type MessagesServiceParams struct {
	fx.In

	Resolver        *CredentialResolver
	IntegrationRepo repository.IntegrationRepository
	SecretRepo      repository.SecretRepository
	ClientFactory   service.SlackClientFactory
	Logger          *slog.Logger
}

// NewMessagesService is the constructor for messagesService.
func NewMessagesService(params MessagesServiceParams) usecase.MessagesUsecase {
	return &messagesService{
		resolver:        params.Resolver,
		integrationRepo: params.IntegrationRepo,
		secretRepo:      params.SecretRepo,
		clientFactory:   params.ClientFactory,
		logger:          params.Logger,
	}
}

func (srv *messagesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *messagesService) client(ctx context.Context, userID entity.UserID, integrationID int64) (*entity.Integration, service.SlackClient, error) {
	integration, creds, err := srv.resolver.Resolve(ctx, userID, integrationID, entity.ServiceTypeSlack)
	if err != nil {
		return nil, nil, err
	}

	token := creds["bot_token"]
	if token == "" {
		token = creds["access_token"]
	}
	if token == "" {
		return nil, nil, domainerrors.ErrCredentialsInvalidFormat.WithDetails("missing credential field: bot_token")
	}

	return integration, srv.clientFactory.New(token), nil
}

// Integrations lists the user's workspace integrations.
func (srv *messagesService) Integrations(ctx context.Context, userID entity.UserID) ([]*usecase.SlackIntegrationView, error) {
	integrations, err := srv.integrationRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeSlack)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	views := make([]*usecase.SlackIntegrationView, 0, len(integrations))
	for _, integration := range integrations {
		if !integration.IsActive {
			continue
		}

		views = append(views, &usecase.SlackIntegrationView{
			ID:            integration.ID,
			WorkspaceName: integration.Config.String(entity.ConfigKeyWorkspaceName),
			TeamID:        integration.Config.String(entity.ConfigKeyTeamID),
			Status:        string(integration.Config.Status()),
			LastSync:      integration.Config.String(entity.ConfigKeyLastSync),
		})
	}

	return views, nil
}

// Connect binds an existing Slack credential to an integration. The workspace
// is probed once so the stored metadata reflects the credential's real state;
// an unreachable workspace still connects, flagged as error.
func (srv *messagesService) Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error) {
	secret, err := srv.secretRepo.FindByID(ctx, secretID)
	if err != nil {
		if errors.Is(err, repository.ErrSecretNotFound) {
			return nil, domainerrors.ErrSecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find secret")
	}
	if secret.UserID != userID {
		return nil, domainerrors.ErrSecretNotFound
	}
	if secret.ServiceType != entity.ServiceTypeSlack {
		return nil, domainerrors.ErrValidationFailed.WithDetails("secret is not a slack credential")
	}

	config := entity.IntegrationConfig{
		entity.ConfigKeyWorkspaceName: "unknown",
		entity.ConfigKeyStatus:        string(entity.ConnectionStatusError),
	}
	if team, err := srv.probeWorkspace(ctx, secret.EncryptedValue); err != nil {
		srv.log(ctx).Warn("Slack probe failed during connect",
			slog.Int64("secretID", secretID),
			slog.Any("error", err),
		)
	} else {
		config[entity.ConfigKeyWorkspaceName] = team.Name
		config[entity.ConfigKeyTeamID] = team.ID
		config[entity.ConfigKeyStatus] = string(entity.ConnectionStatusConnected)
	}

	existing, err := srv.integrationRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeSlack)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing integrations")
	}

	if len(existing) > 0 {
		merged := existing[0].Config.Clone()
		for k, v := range config {
			merged[k] = v
		}

		updated, err := srv.integrationRepo.Update(ctx, existing[0].ID, userID, repository.IntegrationUpdate{
			SecretID: &secretID,
			Config:   merged,
		})

		return updated, errors.Wrap(err, "failed to rebind integration")
	}

	integration := &entity.Integration{
		UserID:      userID,
		ServiceType: entity.ServiceTypeSlack,
		SecretID:    &secretID,
		Config:      config,
		IsActive:    true,
	}
	if err := srv.integrationRepo.Create(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to create integration")
	}

	return integration, nil
}

// probeWorkspace parses a decrypted credential document and fetches the
// workspace behind it.
func (srv *messagesService) probeWorkspace(ctx context.Context, plaintext string) (*service.SlackTeam, error) {
	creds := map[string]string{}
	if err := json.Unmarshal([]byte(plaintext), &creds); err != nil {
		return nil, errors.Wrap(err, "failed to parse credential document")
	}

	token := creds["bot_token"]
	if token == "" {
		token = creds["access_token"]
	}
	if token == "" {
		return nil, errors.New("missing credential field: bot_token")
	}

	return srv.clientFactory.New(token).Team(ctx)
}

// Workspace fetches metadata for the connected workspace.
func (srv *messagesService) Workspace(ctx context.Context, userID entity.UserID, integrationID int64) (*service.SlackTeam, error) {
	_, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	team, err := client.Team(ctx)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch workspace: " + err.Error())
	}

	return team, nil
}

// Channels lists conversations in the connected workspace.
func (srv *messagesService) Channels(ctx context.Context, userID entity.UserID, integrationID int64, limit int) ([]*service.SlackChannel, error) {
	_, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	channels, err := client.Channels(ctx, clampPageSize(limit, defaultSlackPageSize, maxSlackPageSize))
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to list channels: " + err.Error())
	}

	return channels, nil
}

// History lists recent messages from one conversation.
func (srv *messagesService) History(ctx context.Context, userID entity.UserID, integrationID int64, channelID string, limit int) ([]*service.SlackMessage, error) {
	if channelID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("channel id is required")
	}

	_, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	messages, err := client.History(ctx, channelID, clampPageSize(limit, defaultSlackPageSize, maxSlackPageSize))
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch channel history: " + err.Error())
	}

	return messages, nil
}

// Sync probes the workspace and records the outcome on the integration.
func (srv *messagesService) Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*usecase.SyncResult, error) {
	integration, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	team, err := client.Team(ctx)
	if err != nil {
		srv.recordStatus(ctx, integration, userID, entity.ConnectionStatusError)

		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("workspace sync failed: " + err.Error())
	}

	lastSync := time.Now().UTC().Format(time.RFC3339)
	config := integration.Config.Clone()
	config[entity.ConfigKeyWorkspaceName] = team.Name
	config[entity.ConfigKeyTeamID] = team.ID
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

func (srv *messagesService) recordStatus(ctx context.Context, integration *entity.Integration, userID entity.UserID, status entity.ConnectionStatus) {
	config := integration.Config.Clone()
	config[entity.ConfigKeyStatus] = string(status)

	if _, err := srv.integrationRepo.Update(ctx, integration.ID, userID, repository.IntegrationUpdate{Config: config}); err != nil {
		srv.log(ctx).Warn("Failed to record sync status",
			slog.Int64("integrationID", integration.ID),
			slog.Any("error", err),
		)
	}
}
