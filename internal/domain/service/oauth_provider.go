package service

import (
	"context"
	"errors"

	"devfriend/internal/domain/entity"
)

// ErrNoAccessToken is returned when a provider's token response carries no
// usable access token.
var ErrNoAccessToken = errors.New("token response contains no access token")

// ClientCredentials identifies the OAuth application performing a flow.
// They come either from service configuration or from a user-supplied
// custom secret.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// TokenGrant is the normalized result of an authorization code exchange.
// Providers fill only the fields they issue.
type TokenGrant struct {
	AccessToken  string
	RefreshToken string
	BotToken     string // Slack workspace-level token.
	TeamID       string // Slack team identifier.
	TeamName     string // Slack team display name.
}

// Identity describes the account a grant belongs to, as reported by the
// provider's identity endpoint.
type Identity struct {
	// Label is the provider-native account name: an email address for
	// Google, a login for GitHub, a workspace name for Slack.
	Label string

	// Extra carries provider-specific metadata, keyed by the integration
	// config keys it should land under.
	Extra map[string]string
}

// LoginProvider implements the sign-in-with-Google flow. It shares the code
// exchange with the Gmail connect flow but requests identity scopes only.
type LoginProvider interface {
	// LoginAuthorizationURL builds the consent page URL for sign-in.
	LoginAuthorizationURL(creds ClientCredentials, state string) string

	// ExchangeCode swaps an authorization code for tokens.
	ExchangeCode(ctx context.Context, creds ClientCredentials, code string) (*TokenGrant, error)

	// FetchIdentity resolves the account behind a grant.
	FetchIdentity(ctx context.Context, grant *TokenGrant) (*Identity, error)
}

// OAuthProvider implements the authorization code flow for one external
// service. Each provider knows its own endpoints, scopes, credential payload
// shape and integration metadata.
type OAuthProvider interface {
	// Kind returns the service type this provider handles.
	Kind() entity.ServiceType

	// AuthorizationURL builds the provider consent page URL for the given
	// application and signed state token.
	AuthorizationURL(creds ClientCredentials, state string) string

	// ExchangeCode swaps an authorization code for tokens.
	ExchangeCode(ctx context.Context, creds ClientCredentials, code string) (*TokenGrant, error)

	// FetchIdentity resolves the account behind a grant.
	FetchIdentity(ctx context.Context, grant *TokenGrant) (*Identity, error)

	// SecretPayload builds the credential JSON document persisted for this
	// provider.
	SecretPayload(creds ClientCredentials, grant *TokenGrant) map[string]string

	// SecretName builds the display name for the stored secret.
	SecretName(identity *Identity) string

	// IntegrationConfig builds the initial integration metadata for a
	// freshly connected account.
	IntegrationConfig(identity *Identity) entity.IntegrationConfig
}
