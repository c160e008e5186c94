package providerapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"devfriend/internal/domain/service"
)

const githubAPIBaseURL = "https://api.github.com"

// githubClientFactory builds GitHub REST clients.
type githubClientFactory struct {
	baseURL string
}

// NewGitHubClientFactory is the constructor for githubClientFactory.
func NewGitHubClientFactory() service.GitHubClientFactory {
	return &githubClientFactory{baseURL: githubAPIBaseURL}
}

// New builds a client authenticated with one access token.
func (f *githubClientFactory) New(accessToken string) service.GitHubClient {
	return &githubClient{
		baseURL: f.baseURL,
		token:   accessToken,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type githubClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// User fetches the authenticated account.
func (c *githubClient) User(ctx context.Context) (*service.GitHubUser, error) {
	var user struct {
		Login       string `json:"login"`
		Name        string `json:"name"`
		Followers   int    `json:"followers"`
		Following   int    `json:"following"`
		PublicRepos int    `json:"public_repos"`
	}
	if err := c.get(ctx, c.baseURL+"/user", &user); err != nil {
		return nil, errors.Wrap(err, "fetch github user")
	}

	return &service.GitHubUser{
		Login:       user.Login,
		Name:        user.Name,
		Followers:   user.Followers,
		Following:   user.Following,
		PublicRepos: user.PublicRepos,
	}, nil
}

// Repos lists the authenticated account's repositories.
func (c *githubClient) Repos(ctx context.Context, visibility string) ([]*service.GitHubRepo, error) {
	if visibility == "" {
		visibility = "all"
	}

	var raw []struct {
		Name        string `json:"name"`
		FullName    string `json:"full_name"`
		Description string `json:"description"`
		Private     bool   `json:"private"`
		Stars       int    `json:"stargazers_count"`
		Forks       int    `json:"forks_count"`
		Language    string `json:"language"`
		HTMLURL     string `json:"html_url"`
		UpdatedAt   string `json:"updated_at"`
	}
	endpoint := c.baseURL + "/user/repos?per_page=100&sort=updated&visibility=" + visibility
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, errors.Wrap(err, "list github repos")
	}

	repos := make([]*service.GitHubRepo, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, &service.GitHubRepo{
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			Private:     r.Private,
			Stars:       r.Stars,
			Forks:       r.Forks,
			Language:    r.Language,
			HTMLURL:     r.HTMLURL,
			UpdatedAt:   r.UpdatedAt,
		})
	}

	return repos, nil
}

func (c *githubClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devfriend")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("github api returned status %d: %s", resp.StatusCode, string(body))
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decode response")
}
