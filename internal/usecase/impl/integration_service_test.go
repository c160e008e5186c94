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

// integrationServiceFixtures holds all test dependencies for integration service tests.
type integrationServiceFixtures struct {
	service         usecase.IntegrationUsecase
	integrationRepo *mockRepo.MockIntegrationRepository
}

func createTestIntegrationService(t *testing.T) integrationServiceFixtures {
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)

	service := NewIntegrationService(IntegrationServiceParams{
		IntegrationRepo: integrationRepo,
		Logger:          slog.Default(),
	})

	return integrationServiceFixtures{
		service:         service,
		integrationRepo: integrationRepo,
	}
}

func TestIntegrationService_Create(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	secretID := int64(20)

	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGitHub).
		Return(nil, nil)
	fx.integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			assert.Equal(t, entity.UserID(1), integration.UserID)
			assert.Equal(t, &secretID, integration.SecretID)
			assert.True(t, integration.IsActive)
			integration.ID = 10

			return nil
		})

	integration, err := fx.service.Create(ctx, 1, usecase.CreateIntegrationInput{
		ServiceType: entity.ServiceTypeGitHub,
		SecretID:    &secretID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), integration.ID)
}

func TestIntegrationService_Create_RebindsExisting(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	oldSecretID := int64(20)
	newSecretID := int64(21)
	existing := &entity.Integration{
		ID:          10,
		UserID:      1,
		ServiceType: entity.ServiceTypeGitHub,
		SecretID:    &oldSecretID,
		Config:      entity.IntegrationConfig{entity.ConfigKeyGitHubUsername: "alice"},
		IsActive:    true,
	}

	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGitHub).
		Return([]*entity.Integration{existing}, nil)
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, &newSecretID, update.SecretID)
			// New config keys land on top of the existing ones.
			assert.Equal(t, "alice", update.Config.String(entity.ConfigKeyGitHubUsername))
			assert.Equal(t, "connected", update.Config.String(entity.ConfigKeyStatus))

			return existing, nil
		})

	integration, err := fx.service.Create(ctx, 1, usecase.CreateIntegrationInput{
		ServiceType: entity.ServiceTypeGitHub,
		SecretID:    &newSecretID,
		Config:      entity.IntegrationConfig{entity.ConfigKeyStatus: "connected"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), integration.ID)
}

func TestIntegrationService_List(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	integrations := []*entity.Integration{
		{ID: 10, ServiceType: entity.ServiceTypeGmail},
		{ID: 11, ServiceType: entity.ServiceTypeSlack},
	}

	fx.integrationRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return(integrations, nil)

	got, err := fx.service.List(ctx, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, integrations, got)
}

func TestIntegrationService_List_FilteredByType(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	serviceType := entity.ServiceTypeGmail

	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return([]*entity.Integration{{ID: 10, ServiceType: entity.ServiceTypeGmail}}, nil)

	got, err := fx.service.List(ctx, 1, &serviceType)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(10), got[0].ID)
}

func TestIntegrationService_Get_NotFound(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	fx.integrationRepo.EXPECT().
		FindByID(ctx, int64(99), entity.UserID(1)).
		Return(nil, repository.ErrIntegrationNotFound)

	_, err := fx.service.Get(ctx, 1, 99)
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotFound)
}

func TestIntegrationService_Update(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	isActive := false

	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, &isActive, update.IsActive)
			assert.Nil(t, update.SecretID)

			return &entity.Integration{ID: 10, IsActive: false}, nil
		})

	integration, err := fx.service.Update(ctx, 1, 10, usecase.UpdateIntegrationInput{IsActive: &isActive})
	require.NoError(t, err)
	assert.False(t, integration.IsActive)
}

func TestIntegrationService_Update_NotFound(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(99), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		Return(nil, repository.ErrIntegrationNotFound)

	_, err := fx.service.Update(ctx, 1, 99, usecase.UpdateIntegrationInput{})
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotFound)
}

func TestIntegrationService_Delete(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	fx.integrationRepo.EXPECT().Delete(ctx, int64(10), entity.UserID(1)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 1, 10))
}

func TestIntegrationService_Delete_NotFound(t *testing.T) {
	fx := createTestIntegrationService(t)

	ctx := context.Background()
	fx.integrationRepo.EXPECT().
		Delete(ctx, int64(99), entity.UserID(1)).
		Return(repository.ErrIntegrationNotFound)

	err := fx.service.Delete(ctx, 1, 99)
	assert.ErrorIs(t, err, domainerrors.ErrIntegrationNotFound)
}
