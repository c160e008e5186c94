package providerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_User(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer gho_abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"alice","name":"Alice","followers":12,"following":3,"public_repos":7}`))
	}))
	defer server.Close()

	factory := &githubClientFactory{baseURL: server.URL}
	client := factory.New("gho_abc")

	user, err := client.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, 12, user.Followers)
	assert.Equal(t, 7, user.PublicRepos)
}

func TestGitHubClient_Repos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "private", r.URL.Query().Get("visibility"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"devfriend","full_name":"alice/devfriend","private":true,"stargazers_count":4,"forks_count":1,"language":"Go","html_url":"https://github.com/alice/devfriend","updated_at":"2026-08-30T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	factory := &githubClientFactory{baseURL: server.URL}
	client := factory.New("gho_abc")

	repos, err := client.Repos(context.Background(), "private")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "alice/devfriend", repos[0].FullName)
	assert.True(t, repos[0].Private)
	assert.Equal(t, 4, repos[0].Stars)
	assert.Equal(t, "Go", repos[0].Language)
}

func TestGitHubClient_Repos_DefaultsVisibility(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all", r.URL.Query().Get("visibility"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	factory := &githubClientFactory{baseURL: server.URL}
	client := factory.New("gho_abc")

	repos, err := client.Repos(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestGitHubClient_User_BadToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer server.Close()

	factory := &githubClientFactory{baseURL: server.URL}
	client := factory.New("gho_expired")

	_, err := client.User(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
