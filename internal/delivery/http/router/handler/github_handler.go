package handler

import (
	"net/http"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/service"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type connectGitHubRequest struct {
	SecretID int64 `json:"secret_id" validate:"required,gt=0"`
}

type githubRepoResponse struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
	UpdatedAt   string `json:"updated_at"`
}

func newGitHubRepoResponses(repos []*service.GitHubRepo) []githubRepoResponse {
	out := make([]githubRepoResponse, 0, len(repos))
	for _, repo := range repos {
		out = append(out, githubRepoResponse{
			Name:        repo.Name,
			FullName:    repo.FullName,
			Description: repo.Description,
			Private:     repo.Private,
			Stars:       repo.Stars,
			Forks:       repo.Forks,
			Language:    repo.Language,
			HTMLURL:     repo.HTMLURL,
			UpdatedAt:   repo.UpdatedAt,
		})
	}

	return out
}

// GitHubHandler holds dependencies for the GitHub facade handlers.
type GitHubHandler struct {
	uc usecase.GitHubUsecase
}

// NewGitHubHandler is the constructor for GitHubHandler, injected by Fx.
func NewGitHubHandler(uc usecase.GitHubUsecase) *GitHubHandler {
	return &GitHubHandler{uc: uc}
}

// Integrations lists the user's GitHub integrations.
func (h *GitHubHandler) Integrations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.uc.Integrations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "GitHub integrations retrieved successfully")
}

// Connect binds an existing GitHub credential to an integration.
func (h *GitHubHandler) Connect(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req connectGitHubRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	integration, err := h.uc.Connect(c.Request().Context(), userID, req.SecretID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewIntegrationView(integration), "GitHub integration connected successfully")
}

// Repos lists the connected account's repositories.
func (h *GitHubHandler) Repos(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	repos, err := h.uc.Repos(c.Request().Context(), userID, integrationID, c.QueryParam("visibility"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newGitHubRepoResponses(repos), "Repositories retrieved successfully")
}

// Stats summarizes the connected account.
func (h *GitHubHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.uc.Stats(c.Request().Context(), userID, integrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "GitHub stats retrieved successfully")
}

// Sync probes the account and records the outcome on the integration.
func (h *GitHubHandler) Sync(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Sync(c.Request().Context(), userID, integrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "GitHub sync completed successfully")
}
