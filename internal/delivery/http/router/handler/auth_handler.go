// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/entity"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	oauthUC usecase.OAuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, oauthUC usecase.OAuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC, oauthUC: oauthUC}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        newUserResponse(output.User),
	}, "Login successful")
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user), "Profile retrieved successfully")
}

// GoogleLogin initiates the Google Sign-In flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.oauthUC.LoginAuthorize(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthURL)
	}

	return response.Success(c, http.StatusOK, output, "Google OAuth URL generated successfully")
}

// GoogleLoginCallback completes the Google Sign-In flow. The browser is
// mid-redirect, so the outcome is always a redirect to the frontend.
func (h *AuthHandler) GoogleLoginCallback(c echo.Context) error {
	redirectURL := h.oauthUC.LoginCallback(c.Request().Context(),
		c.QueryParam("code"), c.QueryParam("error"))

	return c.Redirect(http.StatusFound, redirectURL)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID.Int64(),
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}
