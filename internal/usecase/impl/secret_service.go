package impl

import (
	"context"
	"log/slog"

	deliverycontext "devfriend/internal/delivery/context"
	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/errors"
	"devfriend/internal/usecase"

	"go.uber.org/fx"
)

// secretService implements the SecretUsecase interface.
type secretService struct {
	secretRepo repository.SecretRepository
	logger     *slog.Logger
}

// SecretServiceParams holds dependencies for secretService, injected by Fx.
type SecretServiceParams struct {
	fx.In

	SecretRepo repository.SecretRepository
	Logger     *slog.Logger
}

// NewSecretService is the constructor for secretService.
func NewSecretService(params SecretServiceParams) usecase.SecretUsecase {
	return &secretService{
		secretRepo: params.SecretRepo,
		logger:     params.Logger,
	}
}

func (srv *secretService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new secret and returns it with the payload redacted.
func (srv *secretService) Create(ctx context.Context, userID entity.UserID, input usecase.CreateSecretInput) (*entity.Secret, error) {
	secret := &entity.Secret{
		UserID:         userID,
		Name:           input.Name,
		ServiceType:    input.ServiceType,
		EncryptedValue: input.Value,
	}
	if err := srv.secretRepo.Create(ctx, secret); err != nil {
		return nil, errors.Wrap(err, "failed to create secret")
	}

	srv.log(ctx).Info("Secret created",
		slog.Int64("secretID", secret.ID),
		slog.String("serviceType", string(secret.ServiceType)),
	)

	secret.EncryptedValue = entity.RedactedValue

	return secret, nil
}

// List returns the user's secrets, newest first, payloads redacted.
func (srv *secretService) List(ctx context.Context, userID entity.UserID) ([]*entity.Secret, error) {
	secrets, err := srv.secretRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list secrets")
	}

	return secrets, nil
}

// ListByType returns the user's secrets of one type, payloads redacted.
func (srv *secretService) ListByType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Secret, error) {
	secrets, err := srv.secretRepo.FindByUserAndType(ctx, userID, serviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list secrets by type")
	}

	return secrets, nil
}

// Get returns one secret with its payload decrypted. A secret owned by a
// different user is reported as not found.
func (srv *secretService) Get(ctx context.Context, userID entity.UserID, id int64) (*entity.Secret, error) {
	secret, err := srv.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return secret, nil
}

// Update applies a partial update and returns the refreshed secret with the
// payload redacted.
func (srv *secretService) Update(ctx context.Context, userID entity.UserID, id int64, input usecase.UpdateSecretInput) (*entity.Secret, error) {
	secret, err := srv.findOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		secret.Name = *input.Name
	}
	if input.ServiceType != nil {
		secret.ServiceType = *input.ServiceType
	}
	if input.Value != nil {
		secret.EncryptedValue = *input.Value
	}

	if err := srv.secretRepo.Update(ctx, secret); err != nil {
		return nil, errors.Wrap(err, "failed to update secret")
	}

	secret.EncryptedValue = entity.RedactedValue

	return secret, nil
}

// Delete removes a secret owned by the calling user.
func (srv *secretService) Delete(ctx context.Context, userID entity.UserID, id int64) error {
	if _, err := srv.findOwned(ctx, userID, id); err != nil {
		return err
	}

	if err := srv.secretRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete secret")
	}

	srv.log(ctx).Info("Secret deleted", slog.Int64("secretID", id))

	return nil
}

// findOwned loads a secret and enforces the uniform not-found policy:
// a missing secret and someone else's secret are indistinguishable.
func (srv *secretService) findOwned(ctx context.Context, userID entity.UserID, id int64) (*entity.Secret, error) {
	secret, err := srv.secretRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSecretNotFound) {
			return nil, domainerrors.ErrSecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find secret")
	}
	if secret.UserID != userID {
		return nil, domainerrors.ErrSecretNotFound
	}

	return secret, nil
}
