package handler

import (
	"net/http"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/entity"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for the provider connect flows.
type OAuthHandler struct {
	oauthUC usecase.OAuthUsecase
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(oauthUC usecase.OAuthUsecase) *OAuthHandler {
	return &OAuthHandler{oauthUC: oauthUC}
}

// providerFromPath maps the URL path segment to a service type. The mailbox
// provider lives under /auth/google.
func providerFromPath(segment string) (entity.ServiceType, bool) {
	switch segment {
	case "google":
		return entity.ServiceTypeGmail, true
	case "github":
		return entity.ServiceTypeGitHub, true
	case "slack":
		return entity.ServiceTypeSlack, true
	}

	return "", false
}

// Authorize starts a connect flow and returns the consent URL.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	provider, ok := providerFromPath(c.Param("provider"))
	if !ok {
		return response.NotFound(c, "NOT_FOUND", "Unknown provider")
	}

	output, err := h.oauthUC.Authorize(c.Request().Context(), userID, provider)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Authorization URL generated successfully")
}

// Callback completes a connect flow. The provider redirected the browser
// here, so every outcome becomes a redirect back to the frontend.
func (h *OAuthHandler) Callback(c echo.Context) error {
	provider, ok := providerFromPath(c.Param("provider"))
	if !ok {
		return response.NotFound(c, "NOT_FOUND", "Unknown provider")
	}

	redirectURL := h.oauthUC.Callback(c.Request().Context(), usecase.OAuthCallbackInput{
		Provider:   provider,
		Code:       c.QueryParam("code"),
		State:      c.QueryParam("state"),
		ErrorParam: c.QueryParam("error"),
	})

	return c.Redirect(http.StatusFound, redirectURL)
}
