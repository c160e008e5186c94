package impl

import (
	"context"
	"log/slog"
	"testing"

	"devfriend/internal/domain/entity"
	domainerrors "devfriend/internal/domain/errors"
	"devfriend/internal/domain/repository"
	"devfriend/internal/domain/service"
	mockRepo "devfriend/internal/mocks/repository"
	mockService "devfriend/internal/mocks/service"
	"devfriend/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testGmailProfile = service.GmailProfile{
	EmailAddress:  "alice@example.com",
	MessagesTotal: 120,
	ThreadsTotal:  80,
}

// emailServiceFixtures holds all test dependencies for email service tests.
type emailServiceFixtures struct {
	service         usecase.EmailUsecase
	secretRepo      *mockRepo.MockSecretRepository
	integrationRepo *mockRepo.MockIntegrationRepository
	clientFactory   *mockService.MockGmailClientFactory
	client          *mockService.MockGmailClient
}

func createTestEmailService(t *testing.T) emailServiceFixtures {
	secretRepo := mockRepo.NewMockSecretRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	clientFactory := mockService.NewMockGmailClientFactory(t)
	client := mockService.NewMockGmailClient(t)

	resolver := NewCredentialResolver(CredentialResolverParams{
		SecretRepo:      secretRepo,
		IntegrationRepo: integrationRepo,
		Logger:          slog.Default(),
	})

	service := NewEmailService(EmailServiceParams{
		Resolver:        resolver,
		IntegrationRepo: integrationRepo,
		SecretRepo:      secretRepo,
		ClientFactory:   clientFactory,
		Logger:          slog.Default(),
	})

	return emailServiceFixtures{
		service:         service,
		secretRepo:      secretRepo,
		integrationRepo: integrationRepo,
		clientFactory:   clientFactory,
		client:          client,
	}
}

// expectResolvedMailbox wires the happy-path credential resolution for one
// bound gmail integration and returns it.
func (fx emailServiceFixtures) expectResolvedMailbox(ctx context.Context) *entity.Integration {
	secretID := int64(20)
	integration := &entity.Integration{
		ID:          10,
		UserID:      1,
		ServiceType: entity.ServiceTypeGmail,
		SecretID:    &secretID,
		Config:      entity.IntegrationConfig{entity.ConfigKeyLastSync: "2026-08-30T00:00:00Z"},
		IsActive:    true,
	}

	fx.integrationRepo.EXPECT().FindByID(ctx, int64(10), entity.UserID(1)).Return(integration, nil)
	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:             20,
		UserID:         1,
		ServiceType:    entity.ServiceTypeGmail,
		EncryptedValue: `{"client_id":"id","client_secret":"sec","refresh_token":"ref"}`,
	}, nil)
	fx.clientFactory.EXPECT().
		New(mock.AnythingOfType("service.GmailCredentials")).
		Return(fx.client)

	return integration
}

func TestEmailService_Emails_ClampsPageSize(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	// 0 falls back to the default page size.
	fx.client.EXPECT().Messages(ctx, 10, "is:unread").Return(nil, nil)

	_, err := fx.service.Emails(ctx, 1, 10, 0, "is:unread")
	require.NoError(t, err)
}

func TestEmailService_Emails_CapsExcessivePageSize(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	fx.client.EXPECT().Messages(ctx, 100, "").Return(nil, nil)

	_, err := fx.service.Emails(ctx, 1, 10, 5000, "")
	require.NoError(t, err)
}

func TestEmailService_Emails_ProviderFailure(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	fx.client.EXPECT().Messages(ctx, 10, "").Return(nil, errors.New("quota exceeded"))

	_, err := fx.service.Emails(ctx, 1, 10, 0, "")
	assert.ErrorIs(t, err, domainerrors.ErrProviderRequestFailed)
}

func TestEmailService_Stats(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	fx.client.EXPECT().Profile(ctx).Return(&testGmailProfile, nil)
	fx.client.EXPECT().UnreadCount(ctx).Return(4, nil)

	stats, err := fx.service.Stats(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stats.EmailAddress)
	assert.Equal(t, 120, stats.MessagesTotal)
	assert.Equal(t, 4, stats.UnreadCount)
	assert.Equal(t, "2026-08-30T00:00:00Z", stats.LastSync)
}

func TestEmailService_Sync_RecordsConnected(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	fx.client.EXPECT().Profile(ctx).Return(&testGmailProfile, nil)
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, string(entity.ConnectionStatusConnected), update.Config.String(entity.ConfigKeyStatus))
			assert.Equal(t, "alice@example.com", update.Config.String(entity.ConfigKeyEmailAddress))
			assert.NotEmpty(t, update.Config.String(entity.ConfigKeyLastSync))

			return nil, nil
		})

	result, err := fx.service.Sync(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusConnected, result.Status)
	assert.NotEmpty(t, result.LastSync)
}

func TestEmailService_Sync_ProviderFailureRecordsError(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	fx.expectResolvedMailbox(ctx)

	fx.client.EXPECT().Profile(ctx).Return(nil, errors.New("invalid_grant"))
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, string(entity.ConnectionStatusError), update.Config.String(entity.ConfigKeyStatus))

			return nil, nil
		})

	_, err := fx.service.Sync(ctx, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrProviderRequestFailed)
}

func TestEmailService_Sync_CredentialErrorLeavesStatusUntouched(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	integration := &entity.Integration{
		ID:          10,
		UserID:      1,
		ServiceType: entity.ServiceTypeGmail,
	}

	fx.integrationRepo.EXPECT().FindByID(ctx, int64(10), entity.UserID(1)).Return(integration, nil)
	fx.secretRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return(nil, nil)

	// No Update expectation: credential problems must not overwrite the
	// recorded status.
	_, err := fx.service.Sync(ctx, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialsNotConfigured)
}

func TestEmailService_Connect_CreatesIntegration(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:          20,
		UserID:      1,
		ServiceType: entity.ServiceTypeGmail,
	}, nil)
	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return(nil, nil)
	fx.integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			integration.ID = 10
			require.NotNil(t, integration.SecretID)
			assert.Equal(t, int64(20), *integration.SecretID)
			assert.True(t, integration.IsActive)

			return nil
		})

	integration, err := fx.service.Connect(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(10), integration.ID)
}

func TestEmailService_Connect_RebindsExisting(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	secretID := int64(20)
	existing := &entity.Integration{ID: 10, UserID: 1, ServiceType: entity.ServiceTypeGmail}

	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:          20,
		UserID:      1,
		ServiceType: entity.ServiceTypeGmail,
	}, nil)
	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeGmail).
		Return([]*entity.Integration{existing}, nil)
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), repository.IntegrationUpdate{SecretID: &secretID}).
		Return(existing, nil)

	integration, err := fx.service.Connect(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, existing, integration)
}

func TestEmailService_Connect_ForeignSecret(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:          20,
		UserID:      2,
		ServiceType: entity.ServiceTypeGmail,
	}, nil)

	_, err := fx.service.Connect(ctx, 1, 20)
	assert.ErrorIs(t, err, domainerrors.ErrSecretNotFound)
}

func TestEmailService_Connect_WrongServiceType(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()

	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:          20,
		UserID:      1,
		ServiceType: entity.ServiceTypeGitHub,
	}, nil)

	_, err := fx.service.Connect(ctx, 1, 20)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmailService_Integrations_FiltersInactiveAndForeignTypes(t *testing.T) {
	fx := createTestEmailService(t)

	ctx := context.Background()
	secretID := int64(20)
	integrations := []*entity.Integration{
		{ID: 10, UserID: 1, ServiceType: entity.ServiceTypeGmail, SecretID: &secretID, IsActive: true,
			Config: entity.IntegrationConfig{entity.ConfigKeyEmailAddress: "alice@example.com"}},
		{ID: 11, UserID: 1, ServiceType: entity.ServiceTypeGitHub, IsActive: true},
		{ID: 12, UserID: 1, ServiceType: entity.ServiceTypeGmail, IsActive: false},
	}

	fx.integrationRepo.EXPECT().FindByUser(ctx, entity.UserID(1)).Return(integrations, nil)

	// Unread count for the sole surviving mailbox.
	fx.integrationRepo.EXPECT().FindByID(ctx, int64(10), entity.UserID(1)).Return(integrations[0], nil)
	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:             20,
		UserID:         1,
		ServiceType:    entity.ServiceTypeGmail,
		EncryptedValue: `{"client_id":"id","client_secret":"sec","refresh_token":"ref"}`,
	}, nil)
	fx.clientFactory.EXPECT().
		New(mock.AnythingOfType("service.GmailCredentials")).
		Return(fx.client)
	fx.client.EXPECT().UnreadCount(ctx).Return(3, nil)

	views, err := fx.service.Integrations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(10), views[0].ID)
	assert.Equal(t, "alice@example.com", views[0].EmailAddress)
	assert.Equal(t, 3, views[0].UnreadCount)
}
