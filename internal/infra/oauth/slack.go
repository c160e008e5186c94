package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

const (
	slackAuthURL  = "https://slack.com/oauth/v2/authorize"
	slackTokenURL = "https://slack.com/api/oauth.v2.access"
)

// slackScopes are requested as bot scopes; user identity rides along via
// the authed_user block in the token response.
var slackScopes = []string{
	"channels:read",
	"channels:history",
	"team:read",
	"groups:read",
	"groups:history",
	"im:history",
	"mpim:history",
}

// SlackProvider implements the v2 authorization code flow against Slack.
type SlackProvider struct {
	authURL  string
	tokenURL string
	client   *http.Client
}

// NewSlackProvider is the constructor for SlackProvider.
func NewSlackProvider() *SlackProvider {
	return &SlackProvider{
		authURL:  slackAuthURL,
		tokenURL: slackTokenURL,
		client:   newHTTPClient(),
	}
}

// Kind returns the service type this provider handles.
func (p *SlackProvider) Kind() entity.ServiceType {
	return entity.ServiceTypeSlack
}

// AuthorizationURL builds the Slack consent page URL.
func (p *SlackProvider) AuthorizationURL(creds service.ClientCredentials, state string) string {
	params := url.Values{}
	params.Set("client_id", creds.ClientID)
	params.Set("redirect_uri", creds.RedirectURI)
	params.Set("scope", strings.Join(slackScopes, ","))
	params.Set("state", state)

	return p.authURL + "?" + params.Encode()
}

// ExchangeCode swaps an authorization code for tokens. Slack's v2 response
// nests the user token under authed_user and puts the bot token at the root,
// alongside team metadata.
func (p *SlackProvider) ExchangeCode(ctx context.Context, creds service.ClientCredentials, code string) (*service.TokenGrant, error) {
	form := url.Values{}
	form.Set("client_id", creds.ClientID)
	form.Set("client_secret", creds.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", creds.RedirectURI)

	var tokenResponse struct {
		OK          bool   `json:"ok"`
		ErrorCode   string `json:"error"`
		AccessToken string `json:"access_token"` // Bot token in v2.
		AuthedUser  struct {
			AccessToken string `json:"access_token"`
		} `json:"authed_user"`
		Team struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"team"`
	}
	if err := postForm(ctx, p.client, p.tokenURL, form, nil, &tokenResponse); err != nil {
		return nil, err
	}
	if !tokenResponse.OK {
		return nil, errors.Errorf("slack token exchange failed: %s", tokenResponse.ErrorCode)
	}
	if tokenResponse.AccessToken == "" && tokenResponse.AuthedUser.AccessToken == "" {
		return nil, service.ErrNoAccessToken
	}

	return &service.TokenGrant{
		AccessToken: tokenResponse.AuthedUser.AccessToken,
		BotToken:    tokenResponse.AccessToken,
		TeamID:      tokenResponse.Team.ID,
		TeamName:    tokenResponse.Team.Name,
	}, nil
}

// FetchIdentity resolves the workspace behind a grant. Slack reports team
// metadata in the token response itself, so no extra call is needed.
func (p *SlackProvider) FetchIdentity(_ context.Context, grant *service.TokenGrant) (*service.Identity, error) {
	label := grant.TeamName
	if label == "" {
		label = "Slack Workspace"
	}

	return &service.Identity{
		Label: label,
		Extra: map[string]string{
			entity.ConfigKeyWorkspaceName: label,
			entity.ConfigKeyTeamID:        grant.TeamID,
		},
	}, nil
}

// SecretPayload builds the Slack credential document.
func (p *SlackProvider) SecretPayload(_ service.ClientCredentials, grant *service.TokenGrant) map[string]string {
	payload := map[string]string{
		"bot_token": grant.BotToken,
		"team_id":   grant.TeamID,
	}
	if grant.AccessToken != "" {
		payload["access_token"] = grant.AccessToken
	}

	return payload
}

// SecretName builds the display name for the stored secret.
func (p *SlackProvider) SecretName(identity *service.Identity) string {
	return fmt.Sprintf("Slack - %s", identity.Label)
}

// IntegrationConfig builds the initial integration metadata.
func (p *SlackProvider) IntegrationConfig(identity *service.Identity) entity.IntegrationConfig {
	return entity.IntegrationConfig{
		entity.ConfigKeyWorkspaceName: identity.Label,
		entity.ConfigKeyTeamID:        identity.Extra[entity.ConfigKeyTeamID],
		entity.ConfigKeyStatus:        string(entity.ConnectionStatusConnected),
	}
}
