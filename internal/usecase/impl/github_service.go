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

// githubService implements the GitHubUsecase interface.
type githubService struct {
	resolver        *CredentialResolver
	integrationRepo repository.IntegrationRepository
	secretRepo      repository.SecretRepository
	clientFactory   service.GitHubClientFactory
	logger          *slog.Logger
}

// GitHubServiceParams holds dependencies for githubService, injected by Fx.
type GitHubServiceParams struct {
	fx.In

	Resolver        *CredentialResolver
	IntegrationRepo repository.IntegrationRepository
	SecretRepo      repository.SecretRepository
	ClientFactory   service.GitHubClientFactory
	Logger          *slog.Logger
}

// NewGitHubService is the constructor for githubService.
func NewGitHubService(params GitHubServiceParams) usecase.GitHubUsecase {
	return &githubService{
		resolver:        params.Resolver,
		integrationRepo: params.IntegrationRepo,
		secretRepo:      params.SecretRepo,
		clientFactory:   params.ClientFactory,
		logger:          params.Logger,
	}
}

func (srv *githubService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *githubService) client(ctx context.Context, userID entity.UserID, integrationID int64) (*entity.Integration, service.GitHubClient, error) {
	integration, creds, err := srv.resolver.Resolve(ctx, userID, integrationID, entity.ServiceTypeGitHub, "access_token")
	if err != nil {
		return nil, nil, err
	}

	return integration, srv.clientFactory.New(creds["access_token"]), nil
}

// Integrations lists the user's GitHub integrations.
func (srv *githubService) Integrations(ctx context.Context, userID entity.UserID) ([]*usecase.GitHubIntegrationView, error) {
	integrations, err := srv.integrationRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeGitHub)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	views := make([]*usecase.GitHubIntegrationView, 0, len(integrations))
	for _, integration := range integrations {
		if !integration.IsActive {
			continue
		}

		views = append(views, &usecase.GitHubIntegrationView{
			ID:       integration.ID,
			Username: integration.Config.String(entity.ConfigKeyGitHubUsername),
			Status:   string(integration.Config.Status()),
			LastSync: integration.Config.String(entity.ConfigKeyLastSync),
		})
	}

	return views, nil
}

// Connect binds an existing GitHub credential to an integration. The account
// is probed once so the stored username and status reflect the credential's
// real state; an unreachable account still connects, flagged as error.
func (srv *githubService) Connect(ctx context.Context, userID entity.UserID, secretID int64) (*entity.Integration, error) {
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
	if secret.ServiceType != entity.ServiceTypeGitHub {
		return nil, domainerrors.ErrValidationFailed.WithDetails("secret is not a github credential")
	}

	config := entity.IntegrationConfig{
		entity.ConfigKeyGitHubUsername: "unknown",
		entity.ConfigKeyStatus:         string(entity.ConnectionStatusError),
	}
	if account, err := srv.probeAccount(ctx, secret.EncryptedValue); err != nil {
		srv.log(ctx).Warn("GitHub probe failed during connect",
			slog.Int64("secretID", secretID),
			slog.Any("error", err),
		)
	} else {
		config[entity.ConfigKeyGitHubUsername] = account.Login
		config[entity.ConfigKeyStatus] = string(entity.ConnectionStatusConnected)
	}

	existing, err := srv.integrationRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeGitHub)
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
		ServiceType: entity.ServiceTypeGitHub,
		SecretID:    &secretID,
		Config:      config,
		IsActive:    true,
	}
	if err := srv.integrationRepo.Create(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to create integration")
	}

	return integration, nil
}

// probeAccount parses a decrypted credential document and fetches the account
// behind it.
func (srv *githubService) probeAccount(ctx context.Context, plaintext string) (*service.GitHubUser, error) {
	creds := map[string]string{}
	if err := json.Unmarshal([]byte(plaintext), &creds); err != nil {
		return nil, errors.Wrap(err, "failed to parse credential document")
	}
	if creds["access_token"] == "" {
		return nil, errors.New("missing credential field: access_token")
	}

	return srv.clientFactory.New(creds["access_token"]).User(ctx)
}

// Repos lists the account's repositories.
func (srv *githubService) Repos(ctx context.Context, userID entity.UserID, integrationID int64, visibility string) ([]*service.GitHubRepo, error) {
	switch visibility {
	case "", "all":
		visibility = "all"
	case "public", "private":
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("visibility must be all, public or private")
	}

	_, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	repos, err := client.Repos(ctx, visibility)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to list repositories: " + err.Error())
	}

	return repos, nil
}

// Stats summarizes the account. The private repository count comes from the
// listing because the user profile only exposes public counts.
func (srv *githubService) Stats(ctx context.Context, userID entity.UserID, integrationID int64) (*usecase.GitHubStats, error) {
	integration, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	account, err := client.User(ctx)
	if err != nil {
		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("failed to fetch account: " + err.Error())
	}

	stats := &usecase.GitHubStats{
		Username:         account.Login,
		Name:             account.Name,
		PublicReposCount: account.PublicRepos,
		TotalReposCount:  account.PublicRepos,
		Followers:        account.Followers,
		Following:        account.Following,
		LastSync:         integration.Config.String(entity.ConfigKeyLastSync),
	}

	repos, err := client.Repos(ctx, "all")
	if err != nil {
		// Counting is best-effort; the profile numbers still stand.
		srv.log(ctx).Warn("Repository listing failed during stats",
			slog.Int64("integrationID", integrationID),
			slog.Any("error", err),
		)

		return stats, nil
	}

	private := 0
	for _, repo := range repos {
		if repo.Private {
			private++
		}
	}
	stats.PrivateReposCount = private
	stats.TotalReposCount = stats.PublicReposCount + private

	return stats, nil
}

// Sync probes the account and records the outcome on the integration.
func (srv *githubService) Sync(ctx context.Context, userID entity.UserID, integrationID int64) (*usecase.SyncResult, error) {
	integration, client, err := srv.client(ctx, userID, integrationID)
	if err != nil {
		return nil, err
	}

	account, err := client.User(ctx)
	if err != nil {
		srv.recordStatus(ctx, integration, userID, entity.ConnectionStatusError, "")

		return nil, domainerrors.ErrProviderRequestFailed.WithDetails("account sync failed: " + err.Error())
	}

	lastSync := time.Now().UTC().Format(time.RFC3339)
	config := integration.Config.Clone()
	config[entity.ConfigKeyGitHubUsername] = account.Login
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

func (srv *githubService) recordStatus(ctx context.Context, integration *entity.Integration, userID entity.UserID, status entity.ConnectionStatus, lastSync string) {
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
