package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

const (
	githubAuthURL  = "https://github.com/login/oauth/authorize"
	githubTokenURL = "https://github.com/login/oauth/access_token"
	githubUserURL  = "https://api.github.com/user"
)

var githubScopes = []string{"repo", "read:user", "notifications"}

// GitHubProvider implements the authorization code flow against GitHub.
type GitHubProvider struct {
	authURL  string
	tokenURL string
	userURL  string
	client   *http.Client
}

// NewGitHubProvider is the constructor for GitHubProvider.
func NewGitHubProvider() *GitHubProvider {
	return &GitHubProvider{
		authURL:  githubAuthURL,
		tokenURL: githubTokenURL,
		userURL:  githubUserURL,
		client:   newHTTPClient(),
	}
}

// Kind returns the service type this provider handles.
func (p *GitHubProvider) Kind() entity.ServiceType {
	return entity.ServiceTypeGitHub
}

// AuthorizationURL builds the GitHub consent page URL.
func (p *GitHubProvider) AuthorizationURL(creds service.ClientCredentials, state string) string {
	params := url.Values{}
	params.Set("client_id", creds.ClientID)
	params.Set("redirect_uri", creds.RedirectURI)
	params.Set("scope", strings.Join(githubScopes, " "))
	params.Set("state", state)

	return p.authURL + "?" + params.Encode()
}

// ExchangeCode swaps an authorization code for an access token.
// GitHub answers form-encoded unless asked for JSON explicitly.
func (p *GitHubProvider) ExchangeCode(ctx context.Context, creds service.ClientCredentials, code string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", creds.RedirectURI)

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		Scope       string `json:"scope"`
	}
	headers := map[string]string{"Accept": "application/json"}
	if err := postForm(ctx, p.client, p.tokenURL, form, headers, &tokenResponse); err != nil {
		return nil, err
	}
	if tokenResponse.AccessToken == "" {
		return nil, service.ErrNoAccessToken
	}

	return &service.TokenGrant{AccessToken: tokenResponse.AccessToken}, nil
}

// FetchIdentity resolves the GitHub account behind a grant.
func (p *GitHubProvider) FetchIdentity(ctx context.Context, grant *service.TokenGrant) (*service.Identity, error) {
	var githubUser struct {
		Login string `json:"login"`
		Name  string `json:"name"`
	}
	headers := map[string]string{
		"Authorization": "Bearer " + grant.AccessToken,
		"Accept":        "application/vnd.github+json",
	}
	if err := getJSON(ctx, p.client, p.userURL, headers, &githubUser); err != nil {
		return nil, err
	}

	return &service.Identity{
		Label: githubUser.Login,
		Extra: map[string]string{entity.ConfigKeyGitHubUsername: githubUser.Login},
	}, nil
}

// SecretPayload builds the GitHub credential document.
func (p *GitHubProvider) SecretPayload(_ service.ClientCredentials, grant *service.TokenGrant) map[string]string {
	return map[string]string{
		"access_token": grant.AccessToken,
	}
}

// SecretName builds the display name for the stored secret.
func (p *GitHubProvider) SecretName(identity *service.Identity) string {
	return fmt.Sprintf("GitHub - %s", identity.Label)
}

// IntegrationConfig builds the initial integration metadata.
func (p *GitHubProvider) IntegrationConfig(identity *service.Identity) entity.IntegrationConfig {
	return entity.IntegrationConfig{
		entity.ConfigKeyGitHubUsername: identity.Label,
		entity.ConfigKeyStatus:         string(entity.ConnectionStatusConnected),
	}
}
