package postgres

import (
	"context"
	"encoding/json"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// integrationRepository implements the repository.IntegrationRepository interface.
// Every lookup filters on user_id, so rows belonging to other users are
// indistinguishable from missing rows.
type integrationRepository struct {
	db *gorm.DB
}

// NewIntegrationRepository is the constructor for integrationRepository.
func NewIntegrationRepository(db *gorm.DB) repository.IntegrationRepository {
	return &integrationRepository{
		db: db,
	}
}

// Create persists a new integration and fills in the generated ID.
func (repo *integrationRepository) Create(ctx context.Context, integration *entity.Integration) error {
	integrationM, err := fromIntegrationDomain(integration)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(integrationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create integration")
	}

	integration.ID = integrationM.ID
	integration.CreatedAt = integrationM.CreatedAt
	integration.UpdatedAt = integrationM.UpdatedAt

	return nil
}

// FindByID retrieves an integration owned by the given user.
func (repo *integrationRepository) FindByID(ctx context.Context, id int64, userID entity.UserID) (*entity.Integration, error) {
	var integrationM model.IntegrationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID.Int64()).
		First(&integrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntegrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find integration by ID")
	}

	return toIntegrationDomain(&integrationM)
}

// FindByUser retrieves all of a user's integrations, newest first.
func (repo *integrationRepository) FindByUser(ctx context.Context, userID entity.UserID) ([]*entity.Integration, error) {
	var integrationModels []*model.IntegrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("created_at DESC").
		Find(&integrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find integrations by user")
	}

	return toIntegrationDomains(integrationModels)
}

// FindByUserAndType retrieves a user's integrations of one service type, newest first.
func (repo *integrationRepository) FindByUserAndType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Integration, error) {
	var integrationModels []*model.IntegrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND service_type = ?", userID.Int64(), string(serviceType)).
		Order("created_at DESC").
		Find(&integrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find integrations by user and type")
	}

	return toIntegrationDomains(integrationModels)
}

// Update applies a partial update and returns the refreshed integration.
func (repo *integrationRepository) Update(ctx context.Context, id int64, userID entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
	updates := map[string]any{}
	if update.SecretID != nil {
		updates["secret_id"] = *update.SecretID
	}
	if update.ServiceType != nil {
		updates["service_type"] = string(*update.ServiceType)
	}
	if update.IsActive != nil {
		updates["is_active"] = *update.IsActive
	}
	if update.Config != nil {
		configJSON, err := json.Marshal(update.Config)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal integration config")
		}
		updates["config"] = string(configJSON)
	}

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.IntegrationModel{}).
			Where("id = ? AND user_id = ?", id, userID.Int64()).
			Updates(updates)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update integration")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrIntegrationNotFound
		}
	}

	return repo.FindByID(ctx, id, userID)
}

// Delete removes an integration owned by the given user.
func (repo *integrationRepository) Delete(ctx context.Context, id int64, userID entity.UserID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID.Int64()).
		Delete(&model.IntegrationModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete integration")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIntegrationNotFound
	}

	return nil
}

func toIntegrationDomains(integrationModels []*model.IntegrationModel) ([]*entity.Integration, error) {
	integrations := make([]*entity.Integration, 0, len(integrationModels))
	for _, integrationM := range integrationModels {
		integration, err := toIntegrationDomain(integrationM)
		if err != nil {
			return nil, err
		}
		integrations = append(integrations, integration)
	}

	return integrations, nil
}

// toIntegrationDomain converts a persistence model to a domain entity.
func toIntegrationDomain(integrationM *model.IntegrationModel) (*entity.Integration, error) {
	config := entity.IntegrationConfig{}
	if integrationM.Config != "" {
		if err := json.Unmarshal([]byte(integrationM.Config), &config); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal integration config")
		}
	}

	return &entity.Integration{
		ID:          integrationM.ID,
		UserID:      entity.UserID(integrationM.UserID),
		ServiceType: entity.ServiceType(integrationM.ServiceType),
		SecretID:    integrationM.SecretID,
		Config:      config,
		IsActive:    integrationM.IsActive,
		CreatedAt:   integrationM.CreatedAt,
		UpdatedAt:   integrationM.UpdatedAt,
	}, nil
}

// fromIntegrationDomain converts a domain entity to a persistence model.
func fromIntegrationDomain(integration *entity.Integration) (*model.IntegrationModel, error) {
	config := integration.Config
	if config == nil {
		config = entity.IntegrationConfig{}
	}
	configJSON, err := json.Marshal(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal integration config")
	}

	return &model.IntegrationModel{
		ID:          integration.ID,
		UserID:      integration.UserID.Int64(),
		ServiceType: string(integration.ServiceType),
		SecretID:    integration.SecretID,
		Config:      string(configJSON),
		IsActive:    integration.IsActive,
		CreatedAt:   integration.CreatedAt,
		UpdatedAt:   integration.UpdatedAt,
	}, nil
}
