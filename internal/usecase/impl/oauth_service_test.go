package impl

import (
	"context"
	"log/slog"
	"testing"

	"devfriend/config"
	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/domain/service"
	mockRepo "devfriend/internal/mocks/repository"
	mockService "devfriend/internal/mocks/service"
	"devfriend/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// oauthServiceFixtures holds all test dependencies for oauth service tests.
type oauthServiceFixtures struct {
	service    usecase.OAuthUsecase
	cfg        *config.Config
	provider   *mockService.MockOAuthProvider
	login      *mockService.MockLoginProvider
	stateSvc   *mockService.MockStateTokenService
	txManager  *mockRepo.MockTransactionManager
	secretRepo *mockRepo.MockSecretRepository
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockService.MockPasswordHasher
	tokenSvc   *mockService.MockTokenService
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	cfg := &config.Config{
		OAuth: &config.OAuthConfig{
			Google:          config.OAuthApp{ClientID: "google-id", ClientSecret: "google-secret"},
			FrontendURL:     "http://frontend.local",
			CallbackBaseURL: "http://api.local",
		},
	}

	provider := mockService.NewMockOAuthProvider(t)
	provider.EXPECT().Kind().Return(entity.ServiceTypeGmail)

	login := mockService.NewMockLoginProvider(t)
	stateSvc := mockService.NewMockStateTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	secretRepo := mockRepo.NewMockSecretRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	svc := NewOAuthService(OAuthServiceParams{
		Config:     cfg,
		Providers:  []service.OAuthProvider{provider},
		Login:      login,
		StateSvc:   stateSvc,
		TxManager:  txManager,
		SecretRepo: secretRepo,
		UserRepo:   userRepo,
		Hasher:     hasher,
		TokenSvc:   tokenSvc,
		Logger:     slog.Default(),
	})

	return oauthServiceFixtures{
		service:    svc,
		cfg:        cfg,
		provider:   provider,
		login:      login,
		stateSvc:   stateSvc,
		txManager:  txManager,
		secretRepo: secretRepo,
		userRepo:   userRepo,
		hasher:     hasher,
		tokenSvc:   tokenSvc,
	}
}

func TestOAuthService_Authorize_EnvCredentials(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.stateSvc.EXPECT().Issue(entity.UserID(1), entity.ServiceTypeGmail).Return("state-token", nil)
	fx.provider.EXPECT().
		AuthorizationURL(mock.AnythingOfType("service.ClientCredentials"), "state-token").
		RunAndReturn(func(creds service.ClientCredentials, state string) string {
			assert.Equal(t, "google-id", creds.ClientID)
			assert.Equal(t, "http://api.local/auth/google/callback", creds.RedirectURI)

			return "https://accounts.google.com/o/oauth2/auth?state=" + state
		})

	output, err := fx.service.Authorize(ctx, 1, entity.ServiceTypeGmail)
	require.NoError(t, err)
	assert.Contains(t, output.AuthURL, "state=state-token")
	assert.Equal(t, "http://api.local/auth/google/callback", output.RedirectURI)
}

func TestOAuthService_Authorize_CustomCredentialOverride(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	custom := &entity.Secret{
		ID:             5,
		UserID:         1,
		ServiceType:    entity.ServiceTypeCustom,
		EncryptedValue: `{"provider":"gmail","client_id":"my-id","client_secret":"my-secret"}`,
	}

	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return([]*entity.Secret{{ID: 5, UserID: 1, EncryptedValue: entity.RedactedValue}}, nil)
	fx.secretRepo.EXPECT().FindByID(ctx, int64(5)).Return(custom, nil)
	fx.stateSvc.EXPECT().Issue(entity.UserID(1), entity.ServiceTypeGmail).Return("state-token", nil)
	fx.provider.EXPECT().
		AuthorizationURL(mock.AnythingOfType("service.ClientCredentials"), "state-token").
		RunAndReturn(func(creds service.ClientCredentials, _ string) string {
			assert.Equal(t, "my-id", creds.ClientID)
			assert.Equal(t, "my-secret", creds.ClientSecret)

			return "https://accounts.google.com/o/oauth2/auth"
		})

	_, err := fx.service.Authorize(ctx, 1, entity.ServiceTypeGmail)
	require.NoError(t, err)
}

func TestOAuthService_Authorize_UnsupportedProvider(t *testing.T) {
	fx := createTestOAuthService(t)

	_, err := fx.service.Authorize(context.Background(), 1, entity.ServiceType("jira"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOAuthService_Authorize_NotConfigured(t *testing.T) {
	fx := createTestOAuthService(t)
	fx.cfg.OAuth.Google = config.OAuthApp{}

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)

	_, err := fx.service.Authorize(ctx, 1, entity.ServiceTypeGmail)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthNotConfigured)
}

func TestOAuthService_Callback_ProviderError(t *testing.T) {
	fx := createTestOAuthService(t)

	redirect := fx.service.Callback(context.Background(), usecase.OAuthCallbackInput{
		Provider:   entity.ServiceTypeGmail,
		ErrorParam: "access_denied",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=access_denied", redirect)
}

func TestOAuthService_Callback_MissingCode(t *testing.T) {
	fx := createTestOAuthService(t)

	redirect := fx.service.Callback(context.Background(), usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=no_code", redirect)
}

func TestOAuthService_Callback_ConfigCheckedBeforeState(t *testing.T) {
	fx := createTestOAuthService(t)
	fx.cfg.OAuth.Google = config.OAuthApp{}

	// No Verify expectation: a misconfigured deployment must report
	// config_error without ever touching the state parameter.
	redirect := fx.service.Callback(context.Background(), usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=config_error", redirect)
}

func TestOAuthService_Callback_InvalidState(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()

	fx.stateSvc.EXPECT().
		Verify("bad-state", entity.ServiceTypeGmail).
		Return(entity.UserID(0), errors.New("invalid"))

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "bad-state",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=invalid_state", redirect)
}

func TestOAuthService_Callback_Success_NewIntegration(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at", RefreshToken: "rt"}
	identity := &service.Identity{Label: "alice@example.com"}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.provider.EXPECT().FetchIdentity(ctx, grant).Return(identity, nil)
	fx.provider.EXPECT().
		SecretPayload(mock.AnythingOfType("service.ClientCredentials"), grant).
		Return(map[string]string{"refresh_token": "rt"})
	fx.provider.EXPECT().SecretName(identity).Return("Gmail - alice@example.com")
	fx.provider.EXPECT().
		IntegrationConfig(identity).
		Return(entity.IntegrationConfig{entity.ConfigKeyEmailAddress: "alice@example.com"})

	fx.secretRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			secret.ID = 55

			return nil
		})

	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return(nil, nil)
	integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			require.NotNil(t, integration.SecretID)
			assert.Equal(t, int64(55), *integration.SecretID)
			assert.True(t, integration.IsActive)
			assert.Equal(t, "alice@example.com", integration.Config.String(entity.ConfigKeyEmailAddress))

			return nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewIntegrationRepository().Return(integrationRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_success=true&secret_id=55", redirect)
}

func TestOAuthService_Callback_Success_RebindsExistingIntegration(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at", RefreshToken: "rt"}
	identity := &service.Identity{Label: "alice@example.com"}
	existing := &entity.Integration{
		ID:          9,
		UserID:      1,
		ServiceType: entity.ServiceTypeGmail,
		Config:      entity.IntegrationConfig{entity.ConfigKeyStatus: "error"},
	}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.provider.EXPECT().FetchIdentity(ctx, grant).Return(identity, nil)
	fx.provider.EXPECT().
		SecretPayload(mock.AnythingOfType("service.ClientCredentials"), grant).
		Return(map[string]string{"refresh_token": "rt"})
	fx.provider.EXPECT().SecretName(identity).Return("Gmail - alice@example.com")
	fx.provider.EXPECT().
		IntegrationConfig(identity).
		Return(entity.IntegrationConfig{entity.ConfigKeyEmailAddress: "alice@example.com"})

	fx.secretRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			secret.ID = 56

			return nil
		})

	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return([]*entity.Integration{existing}, nil)
	integrationRepo.EXPECT().
		Update(ctx, int64(9), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			require.NotNil(t, update.SecretID)
			assert.Equal(t, int64(56), *update.SecretID)
			// Existing config keys survive the merge.
			assert.Equal(t, "error", update.Config.String(entity.ConfigKeyStatus))
			assert.Equal(t, "alice@example.com", update.Config.String(entity.ConfigKeyEmailAddress))

			return existing, nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewIntegrationRepository().Return(integrationRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_success=true&secret_id=56", redirect)
}

func TestOAuthService_Callback_IntegrationFailureAfterSecretWrite(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at", RefreshToken: "rt"}
	identity := &service.Identity{Label: "alice@example.com"}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.provider.EXPECT().FetchIdentity(ctx, grant).Return(identity, nil)
	fx.provider.EXPECT().
		SecretPayload(mock.AnythingOfType("service.ClientCredentials"), grant).
		Return(map[string]string{"refresh_token": "rt"})
	fx.provider.EXPECT().SecretName(identity).Return("Gmail - alice@example.com")

	fx.secretRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			secret.ID = 55

			return nil
		})

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("deadlock"))

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_success=true&secret_id=55&warning=integration_failed", redirect)
}

func TestOAuthService_Callback_IdentityFailureStillPersistsGrant(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at", RefreshToken: "rt"}
	fallback := &service.Identity{Label: "gmail"}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.provider.EXPECT().FetchIdentity(ctx, grant).Return(nil, errors.New("userinfo unavailable"))
	fx.provider.EXPECT().
		SecretPayload(mock.AnythingOfType("service.ClientCredentials"), grant).
		Return(map[string]string{"refresh_token": "rt"})
	fx.provider.EXPECT().SecretName(fallback).Return("Gmail - gmail")
	fx.provider.EXPECT().
		IntegrationConfig(fallback).
		Return(entity.IntegrationConfig{
			entity.ConfigKeyEmailAddress: "gmail",
			entity.ConfigKeyStatus:       string(entity.ConnectionStatusConnected),
		})

	fx.secretRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			assert.Equal(t, "Gmail - gmail", secret.Name)
			secret.ID = 57

			return nil
		})

	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return(nil, nil)
	integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			require.NotNil(t, integration.SecretID)
			assert.Equal(t, int64(57), *integration.SecretID)
			assert.Equal(t, entity.ConnectionStatusError, integration.Config.Status())

			return nil
		})

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewIntegrationRepository().Return(integrationRepo)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_success=true&secret_id=57", redirect)
}

func TestOAuthService_Callback_NoRefreshToken_FallsBackToStored(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at"}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)

	fx.secretRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return([]*entity.Secret{
		{ID: 30, UserID: 1, ServiceType: entity.ServiceTypeGmail, EncryptedValue: entity.RedactedValue},
	}, nil)
	fx.secretRepo.EXPECT().FindByID(ctx, int64(30)).Return(&entity.Secret{
		ID:             30,
		UserID:         1,
		ServiceType:    entity.ServiceTypeGmail,
		EncryptedValue: `{"refresh_token":"stored"}`,
	}, nil)

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?message=already_authorized&oauth_success=true&secret_id=30", redirect)
}

func TestOAuthService_Callback_NoRefreshToken_NothingStored(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at"}

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.secretRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return(nil, nil)

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=no_refresh_token", redirect)
}

func TestOAuthService_Callback_ExchangeFailure(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(nil, errors.New("boom"))

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=token_exchange_failed", redirect)
}

func TestOAuthService_Callback_NoAccessToken(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()

	fx.stateSvc.EXPECT().Verify("state-token", entity.ServiceTypeGmail).Return(entity.UserID(1), nil)
	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeCustom).
		Return(nil, nil)
	fx.provider.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(nil, service.ErrNoAccessToken)

	redirect := fx.service.Callback(ctx, usecase.OAuthCallbackInput{
		Provider: entity.ServiceTypeGmail,
		Code:     "code",
		State:    "state-token",
	})
	assert.Equal(t, "http://frontend.local?oauth_error=no_access_token", redirect)
}

func TestOAuthService_LoginAuthorize(t *testing.T) {
	fx := createTestOAuthService(t)

	fx.stateSvc.EXPECT().Issue(entity.UserID(0), loginStateProvider).Return("login-state", nil)
	fx.login.EXPECT().
		LoginAuthorizationURL(mock.AnythingOfType("service.ClientCredentials"), "login-state").
		RunAndReturn(func(creds service.ClientCredentials, _ string) string {
			assert.Equal(t, "http://api.local/auth/google/login/callback", creds.RedirectURI)

			return "https://accounts.google.com/o/oauth2/auth"
		})

	output, err := fx.service.LoginAuthorize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://api.local/auth/google/login/callback", output.RedirectURI)
}

func TestOAuthService_LoginCallback_ProvisionsUser(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at"}
	identity := &service.Identity{Label: "new@example.com"}

	fx.login.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.login.EXPECT().FetchIdentity(ctx, grant).Return(identity, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("placeholder-hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = 12
			assert.True(t, user.IsActive)

			return nil
		})
	fx.tokenSvc.EXPECT().GenerateToken(entity.UserID(12), "new@example.com").Return("jwt-token", nil)

	redirect := fx.service.LoginCallback(ctx, "code", "")
	assert.Equal(t, "http://frontend.local?token=jwt-token", redirect)
}

func TestOAuthService_LoginCallback_ExistingUser(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at"}
	identity := &service.Identity{Label: "alice@example.com"}

	fx.login.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.login.EXPECT().FetchIdentity(ctx, grant).Return(identity, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: 3, Email: "alice@example.com", IsActive: true}, nil)
	fx.tokenSvc.EXPECT().GenerateToken(entity.UserID(3), "alice@example.com").Return("jwt-token", nil)

	redirect := fx.service.LoginCallback(ctx, "code", "")
	assert.Equal(t, "http://frontend.local?token=jwt-token", redirect)
}

func TestOAuthService_LoginCallback_ErrorParam(t *testing.T) {
	fx := createTestOAuthService(t)

	redirect := fx.service.LoginCallback(context.Background(), "", "access_denied")
	assert.Equal(t, "http://frontend.local?oauth_error=access_denied", redirect)
}

func TestOAuthService_LoginCallback_NoEmail(t *testing.T) {
	fx := createTestOAuthService(t)

	ctx := context.Background()
	grant := &service.TokenGrant{AccessToken: "at"}

	fx.login.EXPECT().
		ExchangeCode(ctx, mock.AnythingOfType("service.ClientCredentials"), "code").
		Return(grant, nil)
	fx.login.EXPECT().FetchIdentity(ctx, grant).Return(&service.Identity{}, nil)

	redirect := fx.service.LoginCallback(ctx, "code", "")
	assert.Equal(t, "http://frontend.local?oauth_error=no_email", redirect)
}
