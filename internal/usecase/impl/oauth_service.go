package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"

	"devfriend/config"
	deliverycontext "devfriend/internal/delivery/context"
	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/domain/service"
	"devfriend/internal/errors"
	"devfriend/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// loginStateProvider tags sign-in state tokens so a connect-flow state can
// never complete a login and vice versa.
const loginStateProvider = entity.ServiceType("google-login")

// Callback error codes surfaced to the frontend as oauth_error values.
const (
	oauthErrNoCode         = "no_code"
	oauthErrConfig         = "config_error"
	oauthErrInvalidState   = "invalid_state"
	oauthErrExchangeFailed = "token_exchange_failed"
	oauthErrNoAccessToken  = "no_access_token"
	oauthErrNoRefreshToken = "no_refresh_token"
	oauthErrUserinfoFailed = "userinfo_failed"
	oauthErrNoEmail        = "no_email"
	oauthErrInternal       = "internal_error"
	oauthWarnIntegration   = "integration_failed"
	oauthMsgAlreadyAuthed  = "already_authorized"
)

// oauthService implements the OAuthUsecase interface. It is the engine
// shared by all providers: providers contribute endpoints and payload
// shapes, the engine owns state handling, credential resolution, persistence
// and redirect building.
type oauthService struct {
	cfg        *config.Config
	providers  map[entity.ServiceType]service.OAuthProvider
	login      service.LoginProvider
	stateSvc   service.StateTokenService
	txManager  repository.TransactionManager
	secretRepo repository.SecretRepository
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	logger     *slog.Logger
}

// OAuthServiceParams holds dependencies for oauthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Config     *config.Config
	Providers  []service.OAuthProvider `group:"oauth_providers"`
	Login      service.LoginProvider
	StateSvc   service.StateTokenService
	TxManager  repository.TransactionManager
	SecretRepo repository.SecretRepository
	UserRepo   repository.UserRepository
	Hasher     service.PasswordHasher
	TokenSvc   service.TokenService
	Logger     *slog.Logger
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	providers := make(map[entity.ServiceType]service.OAuthProvider, len(params.Providers))
	for _, provider := range params.Providers {
		providers[provider.Kind()] = provider
	}

	return &oauthService{
		cfg:        params.Config,
		providers:  providers,
		login:      params.Login,
		stateSvc:   params.StateSvc,
		txManager:  params.TxManager,
		secretRepo: params.SecretRepo,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		tokenSvc:   params.TokenSvc,
		logger:     params.Logger,
	}
}

func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize starts a connect flow for the given provider.
func (srv *oauthService) Authorize(ctx context.Context, userID entity.UserID, providerType entity.ServiceType) (*usecase.AuthorizeOutput, error) {
	provider, ok := srv.providers[providerType]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported provider: " + string(providerType))
	}

	creds, err := srv.resolveClientCredentials(ctx, userID, providerType)
	if err != nil {
		return nil, err
	}

	state, err := srv.stateSvc.Issue(userID, providerType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue state token")
	}

	return &usecase.AuthorizeOutput{
		AuthURL:     provider.AuthorizationURL(creds, state),
		RedirectURI: creds.RedirectURI,
	}, nil
}

// Callback completes a connect flow. It never returns an error: the browser
// is mid-redirect, so every outcome becomes a frontend redirect URL.
//
// Checks run in a fixed order: provider-reported error, missing code,
// missing application config, then state verification. Config is checked
// before state on purpose, so a misconfigured deployment reports
// config_error instead of blaming the state parameter.
func (srv *oauthService) Callback(ctx context.Context, input usecase.OAuthCallbackInput) string {
	if input.ErrorParam != "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {input.ErrorParam}})
	}
	if input.Code == "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoCode}})
	}

	provider, ok := srv.providers[input.Provider]
	if !ok {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrConfig}})
	}

	envCreds := srv.envClientCredentials(input.Provider)
	if envCreds.ClientID == "" || envCreds.ClientSecret == "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrConfig}})
	}

	userID, err := srv.stateSvc.Verify(input.State, input.Provider)
	if err != nil {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrInvalidState}})
	}

	// A custom OAuth app registered by this user overrides the deployment's.
	creds := envCreds
	if custom, ok := srv.customClientCredentials(ctx, userID, input.Provider); ok {
		creds = custom
	}

	grant, err := provider.ExchangeCode(ctx, creds, input.Code)
	if err != nil {
		if errors.Is(err, service.ErrNoAccessToken) {
			return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoAccessToken}})
		}
		srv.log(ctx).Warn("Code exchange failed",
			slog.String("provider", string(input.Provider)),
			slog.Any("error", err),
		)

		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrExchangeFailed}})
	}

	// Google only issues a refresh token on first consent. Without one the
	// new grant is useless for offline access, so fall back to a previously
	// stored mailbox credential when there is one.
	if input.Provider == entity.ServiceTypeGmail && grant.RefreshToken == "" {
		if secretID, ok := srv.findStoredRefreshToken(ctx, userID); ok {
			return srv.frontendRedirect(url.Values{
				"oauth_success": {"true"},
				"secret_id":     {strconv.FormatInt(secretID, 10)},
				"message":       {oauthMsgAlreadyAuthed},
			})
		}

		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoRefreshToken}})
	}

	// The tokens are already issued at this point, so an identity failure
	// must not discard them: fall back to a generic label and persist the
	// grant with the integration marked error.
	identity, err := provider.FetchIdentity(ctx, grant)
	connected := err == nil
	if err != nil {
		srv.log(ctx).Warn("Identity fetch failed",
			slog.String("provider", string(input.Provider)),
			slog.Any("error", err),
		)
		identity = &service.Identity{Label: fallbackIdentityLabel(input.Provider)}
	}
	if identity.Label == "" {
		identity.Label = fallbackIdentityLabel(input.Provider)
	}

	return srv.persistGrant(ctx, userID, provider, creds, grant, identity, connected)
}

// fallbackIdentityLabel names a grant when the provider's identity endpoint
// gives nothing usable.
func fallbackIdentityLabel(providerType entity.ServiceType) string {
	if providerType == entity.ServiceTypeGmail || providerType == entity.ServiceTypeEmail {
		return "gmail"
	}

	return "unknown"
}

// persistGrant stores the credential and binds the integration. The secret
// write is the point of no return: once it lands, an integration failure is
// reported as a success with a warning so the user is not pushed into
// re-consenting.
func (srv *oauthService) persistGrant(ctx context.Context, userID entity.UserID, provider service.OAuthProvider, creds service.ClientCredentials, grant *service.TokenGrant, identity *service.Identity, connected bool) string {
	payload, err := json.Marshal(provider.SecretPayload(creds, grant))
	if err != nil {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrInternal}})
	}

	secret := &entity.Secret{
		UserID:         userID,
		Name:           provider.SecretName(identity),
		ServiceType:    provider.Kind(),
		EncryptedValue: string(payload),
	}
	if err := srv.secretRepo.Create(ctx, secret); err != nil {
		srv.log(ctx).Error("Failed to store credential secret",
			slog.String("provider", string(provider.Kind())),
			slog.Any("error", err),
		)

		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrInternal}})
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		integrationRepo := repoFactory.NewIntegrationRepository()

		existing, err := integrationRepo.FindByUserAndType(ctx, userID, provider.Kind())
		if err != nil {
			return errors.Wrap(err, "failed to check existing integrations")
		}

		metadata := provider.IntegrationConfig(identity)
		if !connected {
			metadata[entity.ConfigKeyStatus] = string(entity.ConnectionStatusError)
		}
		if len(existing) > 0 {
			current := existing[0]
			merged := current.Config.Clone()
			for k, v := range metadata {
				merged[k] = v
			}
			secretID := secret.ID
			_, err := integrationRepo.Update(ctx, current.ID, userID, repository.IntegrationUpdate{
				SecretID: &secretID,
				Config:   merged,
			})

			return errors.Wrap(err, "failed to rebind integration")
		}

		secretID := secret.ID
		integration := &entity.Integration{
			UserID:      userID,
			ServiceType: provider.Kind(),
			SecretID:    &secretID,
			Config:      metadata,
			IsActive:    true,
		}

		return errors.Wrap(integrationRepo.Create(ctx, integration), "failed to create integration")
	})
	if err != nil {
		srv.log(ctx).Error("Credential stored but integration binding failed",
			slog.Int64("secretID", secret.ID),
			slog.Any("error", err),
		)

		return srv.frontendRedirect(url.Values{
			"oauth_success": {"true"},
			"secret_id":     {strconv.FormatInt(secret.ID, 10)},
			"warning":       {oauthWarnIntegration},
		})
	}

	srv.log(ctx).Info("OAuth connect completed",
		slog.String("provider", string(provider.Kind())),
		slog.Int64("secretID", secret.ID),
	)

	return srv.frontendRedirect(url.Values{
		"oauth_success": {"true"},
		"secret_id":     {strconv.FormatInt(secret.ID, 10)},
	})
}

// LoginAuthorize starts a sign-in-with-Google flow.
func (srv *oauthService) LoginAuthorize(ctx context.Context) (*usecase.AuthorizeOutput, error) {
	creds := srv.envClientCredentials(entity.ServiceTypeGmail)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, domainerrors.ErrOAuthNotConfigured.WithDetails("set the Google OAuth client id and secret")
	}
	creds.RedirectURI = srv.callbackURL("google/login/callback")

	state, err := srv.stateSvc.Issue(0, loginStateProvider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue state token")
	}

	return &usecase.AuthorizeOutput{
		AuthURL:     srv.login.LoginAuthorizationURL(creds, state),
		RedirectURI: creds.RedirectURI,
	}, nil
}

// LoginCallback completes a sign-in flow. Unknown accounts are provisioned
// on the spot with an unguessable password, then everyone gets a token.
func (srv *oauthService) LoginCallback(ctx context.Context, code, errorParam string) string {
	if errorParam != "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {errorParam}})
	}
	if code == "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoCode}})
	}

	creds := srv.envClientCredentials(entity.ServiceTypeGmail)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrConfig}})
	}
	creds.RedirectURI = srv.callbackURL("google/login/callback")

	grant, err := srv.login.ExchangeCode(ctx, creds, code)
	if err != nil {
		if errors.Is(err, service.ErrNoAccessToken) {
			return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoAccessToken}})
		}

		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrExchangeFailed}})
	}

	identity, err := srv.login.FetchIdentity(ctx, grant)
	if err != nil {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrUserinfoFailed}})
	}
	if identity.Label == "" {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrNoEmail}})
	}

	user, err := srv.findOrCreateUser(ctx, identity.Label)
	if err != nil {
		srv.log(ctx).Error("Failed to provision user for Google login", slog.Any("error", err))

		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrInternal}})
	}

	token, err := srv.tokenSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return srv.frontendRedirect(url.Values{"oauth_error": {oauthErrInternal}})
	}

	return srv.frontendRedirect(url.Values{"token": {token}})
}

func (srv *oauthService) findOrCreateUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	// The account is password-less from the user's point of view; the hash
	// exists only to satisfy the schema.
	hash, err := srv.hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash placeholder password")
	}

	user = &entity.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// resolveClientCredentials prefers a user-registered custom OAuth app and
// falls back to the deployment's configured one.
func (srv *oauthService) resolveClientCredentials(ctx context.Context, userID entity.UserID, providerType entity.ServiceType) (service.ClientCredentials, error) {
	if creds, ok := srv.customClientCredentials(ctx, userID, providerType); ok {
		return creds, nil
	}

	creds := srv.envClientCredentials(providerType)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return service.ClientCredentials{}, domainerrors.ErrOAuthNotConfigured.WithDetails(
			"no OAuth application configured for " + string(providerType) + "; set the client id and secret or store a custom credential",
		)
	}

	return creds, nil
}

// customClientCredentials scans the user's custom secrets for an OAuth app
// registered for this provider.
func (srv *oauthService) customClientCredentials(ctx context.Context, userID entity.UserID, providerType entity.ServiceType) (service.ClientCredentials, bool) {
	if userID == 0 {
		return service.ClientCredentials{}, false
	}

	candidates, err := srv.secretRepo.FindByUserAndType(ctx, userID, entity.ServiceTypeCustom)
	if err != nil {
		return service.ClientCredentials{}, false
	}

	for _, candidate := range candidates {
		secret, err := srv.secretRepo.FindByID(ctx, candidate.ID)
		if err != nil || secret.EncryptedValue == "" {
			continue
		}

		var doc struct {
			Provider     string `json:"provider"`
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		}
		if err := json.Unmarshal([]byte(secret.EncryptedValue), &doc); err != nil {
			continue
		}
		if doc.Provider != string(providerType) || doc.ClientID == "" || doc.ClientSecret == "" {
			continue
		}

		return service.ClientCredentials{
			ClientID:     doc.ClientID,
			ClientSecret: doc.ClientSecret,
			RedirectURI:  srv.callbackURL(providerPath(providerType) + "/callback"),
		}, true
	}

	return service.ClientCredentials{}, false
}

// envClientCredentials returns the deployment's OAuth app for a provider.
func (srv *oauthService) envClientCredentials(providerType entity.ServiceType) service.ClientCredentials {
	if srv.cfg.OAuth == nil {
		return service.ClientCredentials{}
	}

	var app config.OAuthApp
	switch providerType {
	case entity.ServiceTypeGmail, entity.ServiceTypeEmail:
		app = srv.cfg.OAuth.Google
	case entity.ServiceTypeGitHub:
		app = srv.cfg.OAuth.GitHub
	case entity.ServiceTypeSlack:
		app = srv.cfg.OAuth.Slack
	}

	return service.ClientCredentials{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		RedirectURI:  srv.callbackURL(providerPath(providerType) + "/callback"),
	}
}

// findStoredRefreshToken locates an existing mailbox credential that still
// carries a refresh token.
func (srv *oauthService) findStoredRefreshToken(ctx context.Context, userID entity.UserID) (int64, bool) {
	candidates, err := srv.secretRepo.FindByUser(ctx, userID)
	if err != nil {
		return 0, false
	}

	for _, candidate := range candidates {
		if !entity.ServiceTypeGmail.InFamily(candidate.ServiceType) {
			continue
		}

		secret, err := srv.secretRepo.FindByID(ctx, candidate.ID)
		if err != nil || secret.EncryptedValue == "" {
			continue
		}

		var doc struct {
			RefreshToken string `json:"refresh_token"`
		}
		if err := json.Unmarshal([]byte(secret.EncryptedValue), &doc); err != nil {
			continue
		}
		if doc.RefreshToken != "" {
			return secret.ID, true
		}
	}

	return 0, false
}

func (srv *oauthService) callbackURL(suffix string) string {
	base := ""
	if srv.cfg.OAuth != nil {
		base = srv.cfg.OAuth.CallbackBaseURL
	}

	return base + "/auth/" + suffix
}

func (srv *oauthService) frontendRedirect(params url.Values) string {
	frontend := ""
	if srv.cfg.OAuth != nil {
		frontend = srv.cfg.OAuth.FrontendURL
	}

	return frontend + "?" + params.Encode()
}

// providerPath maps a service type to its URL path segment. The mailbox
// provider is reached under /auth/google.
func providerPath(providerType entity.ServiceType) string {
	if providerType == entity.ServiceTypeGmail || providerType == entity.ServiceTypeEmail {
		return "google"
	}

	return string(providerType)
}
