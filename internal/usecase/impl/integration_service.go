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

// integrationService implements the IntegrationUsecase interface.
type integrationService struct {
	integrationRepo repository.IntegrationRepository
	logger          *slog.Logger
}

// IntegrationServiceParams holds dependencies for integrationService, injected by Fx.
type IntegrationServiceParams struct {
	fx.In

	IntegrationRepo repository.IntegrationRepository
	Logger          *slog.Logger
}

// NewIntegrationService is the constructor for integrationService.
func NewIntegrationService(params IntegrationServiceParams) usecase.IntegrationUsecase {
	return &integrationService{
		integrationRepo: params.IntegrationRepo,
		logger:          params.Logger,
	}
}

func (srv *integrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create connects a service. A user keeps at most one integration per
// service type: when one already exists it is rebound to the new secret and
// config instead of creating a duplicate, so its ID stays stable.
func (srv *integrationService) Create(ctx context.Context, userID entity.UserID, input usecase.CreateIntegrationInput) (*entity.Integration, error) {
	existing, err := srv.integrationRepo.FindByUserAndType(ctx, userID, input.ServiceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing integrations")
	}

	if len(existing) > 0 {
		current := existing[0]
		update := repository.IntegrationUpdate{SecretID: input.SecretID}
		if input.Config != nil {
			merged := current.Config.Clone()
			for k, v := range input.Config {
				merged[k] = v
			}
			update.Config = merged
		}

		updated, err := srv.integrationRepo.Update(ctx, current.ID, userID, update)
		if err != nil {
			return nil, errors.Wrap(err, "failed to rebind existing integration")
		}

		srv.log(ctx).Info("Integration rebound",
			slog.Int64("integrationID", updated.ID),
			slog.String("serviceType", string(updated.ServiceType)),
		)

		return updated, nil
	}

	integration := &entity.Integration{
		UserID:      userID,
		ServiceType: input.ServiceType,
		SecretID:    input.SecretID,
		Config:      input.Config.Clone(),
		IsActive:    true,
	}
	if err := srv.integrationRepo.Create(ctx, integration); err != nil {
		return nil, errors.Wrap(err, "failed to create integration")
	}

	srv.log(ctx).Info("Integration created",
		slog.Int64("integrationID", integration.ID),
		slog.String("serviceType", string(integration.ServiceType)),
	)

	return integration, nil
}

// List returns the user's integrations, optionally filtered by type.
func (srv *integrationService) List(ctx context.Context, userID entity.UserID, serviceType *entity.ServiceType) ([]*entity.Integration, error) {
	var (
		integrations []*entity.Integration
		err          error
	)
	if serviceType != nil {
		integrations, err = srv.integrationRepo.FindByUserAndType(ctx, userID, *serviceType)
	} else {
		integrations, err = srv.integrationRepo.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list integrations")
	}

	return integrations, nil
}

// Get returns one integration owned by the calling user.
func (srv *integrationService) Get(ctx context.Context, userID entity.UserID, id int64) (*entity.Integration, error) {
	integration, err := srv.integrationRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return nil, domainerrors.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration")
	}

	return integration, nil
}

// Update applies a partial update and returns the refreshed integration.
func (srv *integrationService) Update(ctx context.Context, userID entity.UserID, id int64, input usecase.UpdateIntegrationInput) (*entity.Integration, error) {
	updated, err := srv.integrationRepo.Update(ctx, id, userID, repository.IntegrationUpdate{
		SecretID: input.SecretID,
		Config:   input.Config,
		IsActive: input.IsActive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return nil, domainerrors.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to update integration")
	}

	return updated, nil
}

// Delete removes an integration. The backing secret is deliberately kept:
// a later reconnect can adopt it through orphan recovery.
func (srv *integrationService) Delete(ctx context.Context, userID entity.UserID, id int64) error {
	if err := srv.integrationRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrIntegrationNotFound) {
			return domainerrors.ErrIntegrationNotFound
		}

		return errors.Wrap(err, "failed to delete integration")
	}

	srv.log(ctx).Info("Integration deleted", slog.Int64("integrationID", id))

	return nil
}
