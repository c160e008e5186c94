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

// messagesServiceFixtures holds all test dependencies for messages service tests.
type messagesServiceFixtures struct {
	service         usecase.MessagesUsecase
	secretRepo      *mockRepo.MockSecretRepository
	integrationRepo *mockRepo.MockIntegrationRepository
	clientFactory   *mockService.MockSlackClientFactory
	client          *mockService.MockSlackClient
}

func createTestMessagesService(t *testing.T) messagesServiceFixtures {
	secretRepo := mockRepo.NewMockSecretRepository(t)
	integrationRepo := mockRepo.NewMockIntegrationRepository(t)
	clientFactory := mockService.NewMockSlackClientFactory(t)
	client := mockService.NewMockSlackClient(t)

	resolver := NewCredentialResolver(CredentialResolverParams{
		SecretRepo:      secretRepo,
		IntegrationRepo: integrationRepo,
		Logger:          slog.Default(),
	})

	service := NewMessagesService(MessagesServiceParams{
		Resolver:        resolver,
		IntegrationRepo: integrationRepo,
		SecretRepo:      secretRepo,
		ClientFactory:   clientFactory,
		Logger:          slog.Default(),
	})

	return messagesServiceFixtures{
		service:         service,
		secretRepo:      secretRepo,
		integrationRepo: integrationRepo,
		clientFactory:   clientFactory,
		client:          client,
	}
}

// expectResolvedWorkspace wires credential resolution for a bound slack
// integration whose secret carries the given payload.
func (fx messagesServiceFixtures) expectResolvedWorkspace(ctx context.Context, payload string) *entity.Integration {
	secretID := int64(20)
	integration := &entity.Integration{
		ID:          10,
		UserID:      1,
		ServiceType: entity.ServiceTypeSlack,
		SecretID:    &secretID,
		IsActive:    true,
	}

	fx.integrationRepo.EXPECT().FindByID(ctx, int64(10), entity.UserID(1)).Return(integration, nil)
	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:             20,
		UserID:         1,
		ServiceType:    entity.ServiceTypeSlack,
		EncryptedValue: payload,
	}, nil)

	return integration
}

func TestMessagesService_Workspace_PrefersBotToken(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"bot_token":"xoxb-1","access_token":"xoxp-1"}`)

	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(&service.SlackTeam{ID: "T1", Name: "devfriend"}, nil)

	team, err := fx.service.Workspace(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "devfriend", team.Name)
}

func TestMessagesService_Workspace_FallsBackToUserToken(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"access_token":"xoxp-1"}`)

	fx.clientFactory.EXPECT().New("xoxp-1").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(&service.SlackTeam{ID: "T1", Name: "devfriend"}, nil)

	_, err := fx.service.Workspace(ctx, 1, 10)
	require.NoError(t, err)
}

func TestMessagesService_Workspace_NoUsableToken(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"team_id":"T1"}`)

	_, err := fx.service.Workspace(ctx, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrCredentialsInvalidFormat)
}

func TestMessagesService_Channels_ClampsLimit(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"bot_token":"xoxb-1"}`)

	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().Channels(ctx, 100).Return(nil, nil)

	_, err := fx.service.Channels(ctx, 1, 10, 0)
	require.NoError(t, err)
}

func TestMessagesService_History(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"bot_token":"xoxb-1"}`)

	messages := []*service.SlackMessage{{User: "U1", Text: "hi", Timestamp: "1725000000.000100"}}

	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().History(ctx, "C123", 1000).Return(messages, nil)

	got, err := fx.service.History(ctx, 1, 10, "C123", 9999)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestMessagesService_History_ChannelRequired(t *testing.T) {
	fx := createTestMessagesService(t)

	_, err := fx.service.History(context.Background(), 1, 10, "", 50)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMessagesService_Sync_RecordsWorkspaceMetadata(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"bot_token":"xoxb-1"}`)

	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(&service.SlackTeam{ID: "T1", Name: "devfriend"}, nil)
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, "devfriend", update.Config.String(entity.ConfigKeyWorkspaceName))
			assert.Equal(t, "T1", update.Config.String(entity.ConfigKeyTeamID))
			assert.Equal(t, string(entity.ConnectionStatusConnected), update.Config.String(entity.ConfigKeyStatus))

			return nil, nil
		})

	result, err := fx.service.Sync(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusConnected, result.Status)
}

func TestMessagesService_Sync_ProviderFailureRecordsError(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.expectResolvedWorkspace(ctx, `{"bot_token":"xoxb-1"}`)

	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(nil, errors.New("invalid_auth"))
	fx.integrationRepo.EXPECT().
		Update(ctx, int64(10), entity.UserID(1), mock.AnythingOfType("repository.IntegrationUpdate")).
		RunAndReturn(func(_ context.Context, _ int64, _ entity.UserID, update repository.IntegrationUpdate) (*entity.Integration, error) {
			assert.Equal(t, string(entity.ConnectionStatusError), update.Config.String(entity.ConfigKeyStatus))

			return nil, nil
		})

	_, err := fx.service.Sync(ctx, 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrProviderRequestFailed)
}

func TestMessagesService_Integrations(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeSlack).
		Return([]*entity.Integration{
			{
				ID:          10,
				ServiceType: entity.ServiceTypeSlack,
				Config: entity.IntegrationConfig{
					entity.ConfigKeyWorkspaceName: "devfriend",
					entity.ConfigKeyTeamID:        "T1",
					entity.ConfigKeyStatus:        "connected",
				},
				IsActive: true,
			},
			{ID: 11, ServiceType: entity.ServiceTypeSlack, IsActive: false},
		}, nil)

	views, err := fx.service.Integrations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "devfriend", views[0].WorkspaceName)
	assert.Equal(t, "T1", views[0].TeamID)
	assert.Equal(t, "connected", views[0].Status)
}

func TestMessagesService_Connect_ProbesWorkspace(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	secretID := int64(20)

	fx.secretRepo.EXPECT().FindByID(ctx, secretID).Return(&entity.Secret{
		ID:             20,
		UserID:         1,
		ServiceType:    entity.ServiceTypeSlack,
		EncryptedValue: `{"bot_token":"xoxb-1"}`,
	}, nil)
	fx.clientFactory.EXPECT().New("xoxb-1").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(&service.SlackTeam{ID: "T1", Name: "devfriend"}, nil)
	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeSlack).
		Return(nil, nil)
	fx.integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			assert.Equal(t, "devfriend", integration.Config.String(entity.ConfigKeyWorkspaceName))
			assert.Equal(t, "T1", integration.Config.String(entity.ConfigKeyTeamID))
			assert.Equal(t, entity.ConnectionStatusConnected, integration.Config.Status())
			integration.ID = 10

			return nil
		})

	integration, err := fx.service.Connect(ctx, 1, secretID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), integration.ID)
}

func TestMessagesService_Connect_ProbeFailureStillConnects(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	secretID := int64(20)

	fx.secretRepo.EXPECT().FindByID(ctx, secretID).Return(&entity.Secret{
		ID:             20,
		UserID:         1,
		ServiceType:    entity.ServiceTypeSlack,
		EncryptedValue: `{"bot_token":"xoxb-revoked"}`,
	}, nil)
	fx.clientFactory.EXPECT().New("xoxb-revoked").Return(fx.client)
	fx.client.EXPECT().Team(ctx).Return(nil, errors.New("invalid_auth"))
	fx.integrationRepo.EXPECT().
		FindByUserAndType(ctx, entity.UserID(1), entity.ServiceTypeSlack).
		Return(nil, nil)
	fx.integrationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Integration")).
		RunAndReturn(func(_ context.Context, integration *entity.Integration) error {
			assert.Equal(t, "unknown", integration.Config.String(entity.ConfigKeyWorkspaceName))
			assert.Equal(t, entity.ConnectionStatusError, integration.Config.Status())

			return nil
		})

	_, err := fx.service.Connect(ctx, 1, secretID)
	require.NoError(t, err)
}

func TestMessagesService_Connect_WrongSecretType(t *testing.T) {
	fx := createTestMessagesService(t)

	ctx := context.Background()
	fx.secretRepo.EXPECT().FindByID(ctx, int64(20)).Return(&entity.Secret{
		ID:          20,
		UserID:      1,
		ServiceType: entity.ServiceTypeGitHub,
	}, nil)

	_, err := fx.service.Connect(ctx, 1, 20)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
