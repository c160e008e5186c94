package impl

import (
	"context"
	"log/slog"
	"testing"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	mockRepo "devfriend/internal/mocks/repository"
	"devfriend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// secretServiceFixtures holds all test dependencies for secret service tests.
type secretServiceFixtures struct {
	service    usecase.SecretUsecase
	secretRepo *mockRepo.MockSecretRepository
}

func createTestSecretService(t *testing.T) secretServiceFixtures {
	secretRepo := mockRepo.NewMockSecretRepository(t)
	service := NewSecretService(SecretServiceParams{
		SecretRepo: secretRepo,
		Logger:     slog.Default(),
	})

	return secretServiceFixtures{
		service:    service,
		secretRepo: secretRepo,
	}
}

func TestSecretService_Create_RedactsValue(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	input := usecase.CreateSecretInput{
		Name:        "GitHub - alice",
		ServiceType: entity.ServiceTypeGitHub,
		Value:       `{"access_token":"gho_abc"}`,
	}

	fx.secretRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			secret.ID = 11

			return nil
		})

	secret, err := fx.service.Create(ctx, entity.UserID(1), input)
	require.NoError(t, err)
	assert.Equal(t, int64(11), secret.ID)
	assert.Equal(t, "GitHub - alice", secret.Name)
	assert.Equal(t, entity.ServiceTypeGitHub, secret.ServiceType)
	assert.Equal(t, entity.RedactedValue, secret.EncryptedValue)
}

func TestSecretService_Get_ReturnsDecryptedValue(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	stored := &entity.Secret{
		ID:             11,
		UserID:         1,
		Name:           "GitHub - alice",
		ServiceType:    entity.ServiceTypeGitHub,
		EncryptedValue: `{"access_token":"gho_abc"}`,
	}

	fx.secretRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)

	secret, err := fx.service.Get(ctx, entity.UserID(1), 11)
	require.NoError(t, err)
	assert.Equal(t, `{"access_token":"gho_abc"}`, secret.EncryptedValue)
}

func TestSecretService_Get_ForeignSecretLooksMissing(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	stored := &entity.Secret{ID: 11, UserID: 2}

	fx.secretRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)

	_, err := fx.service.Get(ctx, entity.UserID(1), 11)
	assert.ErrorIs(t, err, domainerrors.ErrSecretNotFound)
}

func TestSecretService_Get_NotFound(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrSecretNotFound)

	_, err := fx.service.Get(ctx, entity.UserID(1), 404)
	assert.ErrorIs(t, err, domainerrors.ErrSecretNotFound)
}

func TestSecretService_List(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	secrets := []*entity.Secret{
		{ID: 2, UserID: 1, EncryptedValue: entity.RedactedValue},
		{ID: 1, UserID: 1, EncryptedValue: entity.RedactedValue},
	}

	fx.secretRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return(secrets, nil)

	got, err := fx.service.List(ctx, entity.UserID(1))
	require.NoError(t, err)
	assert.Equal(t, secrets, got)
}

func TestSecretService_ListByType(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	secrets := []*entity.Secret{
		{ID: 5, UserID: 1, ServiceType: entity.ServiceTypeSlack, EncryptedValue: entity.RedactedValue},
	}

	fx.secretRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeSlack).
		Return(secrets, nil)

	got, err := fx.service.ListByType(ctx, entity.UserID(1), entity.ServiceTypeSlack)
	require.NoError(t, err)
	assert.Equal(t, secrets, got)
}

func TestSecretService_Update_PartialFields(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()
	stored := &entity.Secret{
		ID:             11,
		UserID:         1,
		Name:           "old name",
		ServiceType:    entity.ServiceTypeGmail,
		EncryptedValue: `{"refresh_token":"old"}`,
	}

	fx.secretRepo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)
	fx.secretRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Secret")).
		RunAndReturn(func(_ context.Context, secret *entity.Secret) error {
			assert.Equal(t, "new name", secret.Name)
			// Untouched fields keep their stored values.
			assert.Equal(t, entity.ServiceTypeGmail, secret.ServiceType)
			assert.Equal(t, `{"refresh_token":"old"}`, secret.EncryptedValue)

			return nil
		})

	name := "new name"
	secret, err := fx.service.Update(ctx, entity.UserID(1), 11, usecase.UpdateSecretInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, entity.RedactedValue, secret.EncryptedValue)
}

func TestSecretService_Update_ForeignSecret(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Secret{ID: 11, UserID: 2}, nil)

	name := "new name"
	_, err := fx.service.Update(ctx, entity.UserID(1), 11, usecase.UpdateSecretInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrSecretNotFound)
}

func TestSecretService_Delete(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Secret{ID: 11, UserID: 1}, nil)
	fx.secretRepo.EXPECT().Delete(ctx, int64(11)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, entity.UserID(1), 11))
}

func TestSecretService_Delete_ForeignSecret(t *testing.T) {
	fx := createTestSecretService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().
		FindByID(ctx, int64(11)).
		Return(&entity.Secret{ID: 11, UserID: 2}, nil)

	err := fx.service.Delete(ctx, entity.UserID(1), 11)
	assert.ErrorIs(t, err, domainerrors.ErrSecretNotFound)
}
