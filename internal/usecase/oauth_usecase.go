package usecase

import (
	"context"

	"devfriend/internal/domain/entity"
)

// AuthorizeOutput carries the provider consent URL for the frontend to open.
type AuthorizeOutput struct {
	AuthURL     string `json:"auth_url"`
	RedirectURI string `json:"redirect_uri"`
}

// OAuthCallbackInput is everything the provider sends back to the callback
// endpoint.
type OAuthCallbackInput struct {
	Provider   entity.ServiceType
	Code       string
	State      string
	ErrorParam string
}

// OAuthUsecase drives the authorization code flows.
//
// Callback and LoginCallback never fail: whatever happens, they produce a
// frontend redirect URL carrying either success parameters or an
// oauth_error code, because the browser is mid-redirect and cannot render
// an API error.
type OAuthUsecase interface {
	// Authorize starts a connect flow for the given provider.
	Authorize(ctx context.Context, userID entity.UserID, provider entity.ServiceType) (*AuthorizeOutput, error)

	// Callback completes a connect flow and returns the frontend redirect URL.
	Callback(ctx context.Context, input OAuthCallbackInput) string

	// LoginAuthorize starts a sign-in-with-Google flow.
	LoginAuthorize(ctx context.Context) (*AuthorizeOutput, error)

	// LoginCallback completes a sign-in flow and returns the frontend
	// redirect URL, carrying an access token on success.
	LoginCallback(ctx context.Context, code, errorParam string) string
}
