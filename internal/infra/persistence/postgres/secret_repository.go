package postgres

import (
	"context"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/domain/service"
	"devfriend/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// secretRepository implements the repository.SecretRepository interface.
//
// Encryption happens here, at the storage boundary: every write encrypts the
// payload, and only FindByID decrypts. List reads replace the payload with
// entity.RedactedValue so plaintext never reaches callers that hold more
// than one row.
type secretRepository struct {
	db        *gorm.DB
	encryptor service.Encryptor
}

// NewSecretRepository is the constructor for secretRepository.
func NewSecretRepository(db *gorm.DB, encryptor service.Encryptor) repository.SecretRepository {
	return &secretRepository{
		db:        db,
		encryptor: encryptor,
	}
}

// Create persists a new secret, encrypting its payload.
func (repo *secretRepository) Create(ctx context.Context, secret *entity.Secret) error {
	encrypted, err := repo.encryptor.Encrypt(secret.EncryptedValue)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt secret payload")
	}

	secretM := fromSecretDomain(secret)
	secretM.EncryptedValue = encrypted

	if err := repo.db.WithContext(ctx).Create(secretM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create secret")
	}

	secret.ID = secretM.ID
	secret.CreatedAt = secretM.CreatedAt
	secret.UpdatedAt = secretM.UpdatedAt

	return nil
}

// FindByID retrieves a single secret with its payload decrypted.
// A payload that fails decryption comes back as an empty string.
func (repo *secretRepository) FindByID(ctx context.Context, id int64) (*entity.Secret, error) {
	var secretM model.SecretModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&secretM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSecretNotFound
		}

		return nil, errors.Wrap(err, "failed to find secret by ID")
	}

	secret := toSecretDomain(&secretM)
	secret.EncryptedValue = repo.encryptor.Decrypt(secretM.EncryptedValue)

	return secret, nil
}

// FindByUser retrieves all secrets for a user, newest first, with payloads redacted.
func (repo *secretRepository) FindByUser(ctx context.Context, userID entity.UserID) ([]*entity.Secret, error) {
	var secretModels []*model.SecretModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID.Int64()).
		Order("created_at DESC").
		Find(&secretModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find secrets by user")
	}

	return redactSecrets(secretModels), nil
}

// FindByUserAndType retrieves a user's secrets of one service type, newest
// first, with payloads redacted.
func (repo *secretRepository) FindByUserAndType(ctx context.Context, userID entity.UserID, serviceType entity.ServiceType) ([]*entity.Secret, error) {
	var secretModels []*model.SecretModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND service_type = ?", userID.Int64(), string(serviceType)).
		Order("created_at DESC").
		Find(&secretModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find secrets by user and type")
	}

	return redactSecrets(secretModels), nil
}

// Update modifies a secret's name, type and payload, re-encrypting the payload.
func (repo *secretRepository) Update(ctx context.Context, secret *entity.Secret) error {
	encrypted, err := repo.encryptor.Encrypt(secret.EncryptedValue)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt secret payload")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SecretModel{}).
		Where("id = ?", secret.ID).
		Updates(map[string]any{
			"name":            secret.Name,
			"service_type":    string(secret.ServiceType),
			"encrypted_value": encrypted,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSecretNotFound
	}

	return nil
}

// Delete removes a secret by its ID.
func (repo *secretRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.SecretModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSecretNotFound
	}

	return nil
}

func redactSecrets(secretModels []*model.SecretModel) []*entity.Secret {
	secrets := make([]*entity.Secret, 0, len(secretModels))
	for _, secretM := range secretModels {
		secret := toSecretDomain(secretM)
		secret.EncryptedValue = entity.RedactedValue
		secrets = append(secrets, secret)
	}

	return secrets
}

// toSecretDomain converts a persistence model to a domain entity.
// The payload is handled by the caller.
func toSecretDomain(secretM *model.SecretModel) *entity.Secret {
	return &entity.Secret{
		ID:          secretM.ID,
		UserID:      entity.UserID(secretM.UserID),
		Name:        secretM.Name,
		ServiceType: entity.ServiceType(secretM.ServiceType),
		CreatedAt:   secretM.CreatedAt,
		UpdatedAt:   secretM.UpdatedAt,
	}
}

// fromSecretDomain converts a domain entity to a persistence model.
// The payload is handled by the caller.
func fromSecretDomain(secret *entity.Secret) *model.SecretModel {
	return &model.SecretModel{
		ID:          secret.ID,
		UserID:      secret.UserID.Int64(),
		Name:        secret.Name,
		ServiceType: string(secret.ServiceType),
		CreatedAt:   secret.CreatedAt,
		UpdatedAt:   secret.UpdatedAt,
	}
}
