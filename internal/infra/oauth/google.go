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
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// gmailScopes grants read access to the mailbox plus the account email.
var gmailScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"openid",
}

// loginScopes identify the account only; no mailbox access is requested
// during sign-in.
var loginScopes = []string{"openid", "email", "profile"}

// GoogleProvider implements the authorization code flow against Google,
// requesting offline access so a refresh token is issued.
type GoogleProvider struct {
	authURL     string
	tokenURL    string
	userInfoURL string
	client      *http.Client
}

// NewGoogleProvider is the constructor for GoogleProvider.
func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{
		authURL:     googleAuthURL,
		tokenURL:    googleTokenURL,
		userInfoURL: googleUserInfoURL,
		client:      newHTTPClient(),
	}
}

// Kind returns the service type this provider handles.
func (p *GoogleProvider) Kind() entity.ServiceType {
	return entity.ServiceTypeGmail
}

// AuthorizationURL builds the Google consent page URL.
func (p *GoogleProvider) AuthorizationURL(creds service.ClientCredentials, state string) string {
	params := url.Values{}
	params.Set("client_id", creds.ClientID)
	params.Set("redirect_uri", creds.RedirectURI)
	params.Set("scope", strings.Join(gmailScopes, " "))
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return p.authURL + "?" + params.Encode()
}

// LoginAuthorizationURL builds the consent page URL for sign-in, asking for
// identity scopes only.
func (p *GoogleProvider) LoginAuthorizationURL(creds service.ClientCredentials, state string) string {
	params := url.Values{}
	params.Set("client_id", creds.ClientID)
	params.Set("redirect_uri", creds.RedirectURI)
	params.Set("scope", strings.Join(loginScopes, " "))
	params.Set("response_type", "code")
	params.Set("state", state)

	return p.authURL + "?" + params.Encode()
}

// ExchangeCode swaps an authorization code for tokens.
func (p *GoogleProvider) ExchangeCode(ctx context.Context, creds service.ClientCredentials, code string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", creds.RedirectURI)

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := postForm(ctx, p.client, p.tokenURL, form, nil, &tokenResponse); err != nil {
		return nil, err
	}
	if tokenResponse.AccessToken == "" {
		return nil, service.ErrNoAccessToken
	}

	return &service.TokenGrant{
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
	}, nil
}

// FetchIdentity resolves the Google account behind a grant.
func (p *GoogleProvider) FetchIdentity(ctx context.Context, grant *service.TokenGrant) (*service.Identity, error) {
	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	headers := map[string]string{"Authorization": "Bearer " + grant.AccessToken}
	if err := getJSON(ctx, p.client, p.userInfoURL, headers, &googleUser); err != nil {
		return nil, err
	}

	return &service.Identity{
		Label: googleUser.Email,
		Extra: map[string]string{entity.ConfigKeyEmailAddress: googleUser.Email},
	}, nil
}

// SecretPayload builds the Gmail credential document. The client id and
// secret travel with the refresh token so the mailbox stays reachable even
// if the service's own OAuth application changes later.
func (p *GoogleProvider) SecretPayload(creds service.ClientCredentials, grant *service.TokenGrant) map[string]string {
	return map[string]string{
		"client_id":     creds.ClientID,
		"client_secret": creds.ClientSecret,
		"refresh_token": grant.RefreshToken,
		"redirect_uri":  creds.RedirectURI,
	}
}

// SecretName builds the display name for the stored secret.
func (p *GoogleProvider) SecretName(identity *service.Identity) string {
	return fmt.Sprintf("Gmail - %s", identity.Label)
}

// IntegrationConfig builds the initial integration metadata.
func (p *GoogleProvider) IntegrationConfig(identity *service.Identity) entity.IntegrationConfig {
	return entity.IntegrationConfig{
		entity.ConfigKeyEmailAddress: identity.Label,
		entity.ConfigKeyStatus:       string(entity.ConnectionStatusConnected),
	}
}
