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

func TestGitHubProvider_AuthorizationURL(t *testing.T) {
	provider := NewGitHubProvider()

	raw := provider.AuthorizationURL(testClientCredentials(), "state-token")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "repo read:user notifications", query.Get("scope"))
	assert.Equal(t, "state-token", query.Get("state"))
}

func TestGitHubProvider_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// GitHub answers form-encoded unless JSON is requested.
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_abc","token_type":"bearer","scope":"repo"}`))
	}))
	defer server.Close()

	provider := NewGitHubProvider()
	provider.tokenURL = server.URL

	grant, err := provider.ExchangeCode(context.Background(), testClientCredentials(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "gho_abc", grant.AccessToken)
	assert.Empty(t, grant.RefreshToken)
}

func TestGitHubProvider_ExchangeCode_NoAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
	}))
	defer server.Close()

	provider := NewGitHubProvider()
	provider.tokenURL = server.URL

	_, err := provider.ExchangeCode(context.Background(), testClientCredentials(), "stale-code")
	assert.ErrorIs(t, err, service.ErrNoAccessToken)
}

func TestGitHubProvider_FetchIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","name":"Alice"}`))
	}))
	defer server.Close()

	provider := NewGitHubProvider()
	provider.userURL = server.URL

	identity, err := provider.FetchIdentity(context.Background(), &service.TokenGrant{AccessToken: "gho_abc"})
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Label)
	assert.Equal(t, "alice", identity.Extra[entity.ConfigKeyGitHubUsername])
}

func TestGitHubProvider_SecretPayload(t *testing.T) {
	provider := NewGitHubProvider()

	payload := provider.SecretPayload(testClientCredentials(), &service.TokenGrant{AccessToken: "gho_abc"})
	assert.Equal(t, map[string]string{"access_token": "gho_abc"}, payload)
}

func TestGitHubProvider_IntegrationConfig(t *testing.T) {
	provider := NewGitHubProvider()

	identity := &service.Identity{Label: "alice"}
	assert.Equal(t, "GitHub - alice", provider.SecretName(identity))

	config := provider.IntegrationConfig(identity)
	assert.Equal(t, "alice", config.String(entity.ConfigKeyGitHubUsername))
	assert.Equal(t, entity.ConnectionStatusConnected, config.Status())
}
