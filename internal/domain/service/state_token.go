package service

import "devfriend/internal/domain/entity"

// StateTokenService issues and verifies the signed state parameter carried
// through OAuth redirects. Tokens are single-use and expire quickly, which
// defends the callback against CSRF and replay.
type StateTokenService interface {
	// Issue creates a state token binding the flow to a user and provider.
	Issue(userID entity.UserID, provider entity.ServiceType) (string, error)

	// Verify checks signature, expiry, provider binding and single-use, and
	// returns the user the flow belongs to. A token never verifies twice.
	Verify(token string, provider entity.ServiceType) (entity.UserID, error)
}
