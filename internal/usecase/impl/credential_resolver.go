package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "devfriend/internal/delivery/context"
	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/errors"

	"go.uber.org/fx"
)

// CredentialResolver turns an integration ID into usable plaintext
// credentials. It owns the recovery path for orphaned integrations: an
// integration whose secret binding is missing or dangling adopts the user's
// most recent secret of a compatible type, and the adoption is persisted so
// the next call is a plain lookup.
type CredentialResolver struct {
	secretRepo      repository.SecretRepository
	integrationRepo repository.IntegrationRepository
	logger          *slog.Logger
}

// CredentialResolverParams holds dependencies for CredentialResolver, injected by Fx.
type CredentialResolverParams struct {
	fx.In

	SecretRepo      repository.SecretRepository
	IntegrationRepo repository.IntegrationRepository
	Logger          *slog.Logger
}

// NewCredentialResolver is the constructor for CredentialResolver.
func NewCredentialResolver(params CredentialResolverParams) *CredentialResolver {
	return &CredentialResolver{
		secretRepo:      params.SecretRepo,
		integrationRepo: params.IntegrationRepo,
		logger:          params.Logger,
	}
}

func (r *CredentialResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve loads the integration, finds its credential (recovering orphans),
// decrypts it and checks that the required fields are present. The returned
// map is the parsed plaintext credential document.
func (r *CredentialResolver) Resolve(ctx context.Context, userID entity.UserID, integrationID int64, family entity.ServiceType, requiredFields ...string) (*entity.Integration, map[string]string, error) {
	integration, err := r.integrationRepo.FindByID(ctx, integrationID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return nil, nil, domainerrors.ErrIntegrationNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find integration")
	}

	// An integration of the wrong service type is as good as missing.
	if !family.InFamily(integration.ServiceType) {
		return nil, nil, domainerrors.ErrIntegrationNotFound
	}

	secret, err := r.findSecret(ctx, integration, family)
	if err != nil {
		return nil, nil, err
	}

	if secret.UserID != userID {
		return nil, nil, domainerrors.ErrCredentialsAccessDenied
	}
	if secret.EncryptedValue == "" {
		return nil, nil, domainerrors.ErrCredentialsCorrupted
	}

	creds := map[string]string{}
	if err := json.Unmarshal([]byte(secret.EncryptedValue), &creds); err != nil {
		return nil, nil, domainerrors.ErrCredentialsInvalidFormat
	}

	for _, field := range requiredFields {
		if creds[field] == "" {
			return nil, nil, domainerrors.ErrCredentialsInvalidFormat.WithDetails("missing credential field: " + field)
		}
	}

	return integration, creds, nil
}

// findSecret returns the decrypted secret backing the integration,
// recovering through adoption when the binding is absent or dangling.
func (r *CredentialResolver) findSecret(ctx context.Context, integration *entity.Integration, family entity.ServiceType) (*entity.Secret, error) {
	if integration.HasSecret() {
		secret, err := r.secretRepo.FindByID(ctx, *integration.SecretID)
		if err == nil {
			return secret, nil
		}
		if !errors.Is(err, repository.ErrSecretNotFound) {
			return nil, errors.Wrap(err, "failed to find secret")
		}
		// Dangling reference: fall through to adoption.
	}

	return r.adoptSecret(ctx, integration, family)
}

// adoptSecret binds the user's most recent compatible secret to the
// integration and persists the new binding.
func (r *CredentialResolver) adoptSecret(ctx context.Context, integration *entity.Integration, family entity.ServiceType) (*entity.Secret, error) {
	candidates, err := r.secretRepo.FindByUser(ctx, integration.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan secrets for adoption")
	}

	for _, candidate := range candidates {
		if !family.InFamily(candidate.ServiceType) {
			continue
		}

		// Listings are redacted; re-fetch for the decrypted payload.
		secret, err := r.secretRepo.FindByID(ctx, candidate.ID)
		if err != nil {
			continue
		}

		secretID := secret.ID
		if _, err := r.integrationRepo.Update(ctx, integration.ID, integration.UserID, repository.IntegrationUpdate{SecretID: &secretID}); err != nil {
			return nil, errors.Wrap(err, "failed to persist adopted secret binding")
		}
		integration.SecretID = &secretID

		r.log(ctx).Info("Orphaned integration adopted a secret",
			slog.Int64("integrationID", integration.ID),
			slog.Int64("secretID", secretID),
		)

		return secret, nil
	}

	return nil, domainerrors.ErrCredentialsNotConfigured
}

// isCredentialError reports whether err stems from missing or unusable
// credentials rather than from the provider itself. Sync keeps the recorded
// status untouched for these, so a user-fixable problem does not masquerade
// as a provider outage.
func isCredentialError(err error) bool {
	return errors.Is(err, domainerrors.ErrCredentialsNotConfigured) ||
		errors.Is(err, domainerrors.ErrCredentialsAccessDenied) ||
		errors.Is(err, domainerrors.ErrCredentialsCorrupted) ||
		errors.Is(err, domainerrors.ErrCredentialsInvalidFormat) ||
		errors.Is(err, domainerrors.ErrIntegrationNotFound) ||
		errors.Is(err, domainerrors.ErrSecretNotFound)
}
