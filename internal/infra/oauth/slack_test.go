package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackProvider_AuthorizationURL(t *testing.T) {
	provider := NewSlackProvider()

	raw := provider.AuthorizationURL(testClientCredentials(), "state-token")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	// Slack separates scopes with commas, not spaces.
	assert.Contains(t, query.Get("scope"), "channels:read,channels:history")
	assert.Equal(t, "state-token", query.Get("state"))
}

func TestSlackProvider_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ok": true,
			"access_token": "xoxb-bot",
			"authed_user": {"access_token": "xoxp-user"},
			"team": {"id": "T1", "name": "devfriend"}
		}`))
	}))
	defer server.Close()

	provider := NewSlackProvider()
	provider.tokenURL = server.URL

	grant, err := provider.ExchangeCode(context.Background(), testClientCredentials(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "xoxb-bot", grant.BotToken)
	assert.Equal(t, "xoxp-user", grant.AccessToken)
	assert.Equal(t, "T1", grant.TeamID)
	assert.Equal(t, "devfriend", grant.TeamName)
}

func TestSlackProvider_ExchangeCode_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_code"}`))
	}))
	defer server.Close()

	provider := NewSlackProvider()
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), testClientCredentials(), "bad-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_code")
}

func TestSlackProvider_ExchangeCode_NoTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"team":{"id":"T1","name":"devfriend"}}`))
	}))
	defer server.Close()

	provider := NewSlackProvider()
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), testClientCredentials(), "auth-code")
	assert.ErrorIs(t, err, service.ErrNoAccessToken)
}

func TestSlackProvider_FetchIdentity_FromGrant(t *testing.T) {
	provider := NewSlackProvider()

	identity, err := provider.FetchIdentity(context.Background(), &service.TokenGrant{
		BotToken: "xoxb-bot",
		TeamID:   "T1",
		TeamName: "devfriend",
	})
	require.NoError(t, err)
	assert.Equal(t, "devfriend", identity.Label)
	assert.Equal(t, "T1", identity.Extra[entity.ConfigKeyTeamID])
}

func TestSlackProvider_FetchIdentity_FallbackLabel(t *testing.T) {
	provider := NewSlackProvider()

	identity, err := provider.FetchIdentity(context.Background(), &service.TokenGrant{BotToken: "xoxb-bot"})
	require.NoError(t, err)
	assert.Equal(t, "Slack Workspace", identity.Label)
}

func TestSlackProvider_SecretPayload(t *testing.T) {
	provider := NewSlackProvider()

	payload := provider.SecretPayload(testClientCredentials(), &service.TokenGrant{
		BotToken: "xoxb-bot",
		TeamID:   "T1",
	})
	assert.Equal(t, "xoxb-bot", payload["bot_token"])
	assert.Equal(t, "T1", payload["team_id"])
	_, hasUserToken := payload["access_token"]
	assert.False(t, hasUserToken)
}

func TestSlackProvider_IntegrationConfig(t *testing.T) {
	provider := NewSlackProvider()

	identity := &service.Identity{
		Label: "devfriend",
		Extra: map[string]string{entity.ConfigKeyTeamID: "T1"},
	}
	assert.Equal(t, "Slack - devfriend", provider.SecretName(identity))

	config := provider.IntegrationConfig(identity)
	assert.Equal(t, "devfriend", config.String(entity.ConfigKeyWorkspaceName))
	assert.Equal(t, "T1", config.String(entity.ConfigKeyTeamID))
}
