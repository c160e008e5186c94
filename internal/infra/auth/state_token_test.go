package auth

import (
	"testing"

	"devfriend/config"
	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStateTokenService(t *testing.T) service.StateTokenService {
	cfg := &config.Config{}
	cfg.SecretKey.State = "test-state-secret"

	svc, err := NewStateTokenService(cfg)
	require.NoError(t, err)

	return svc
}

func TestStateTokenService_IssueAndVerify(t *testing.T) {
	svc := createTestStateTokenService(t)

	token, err := svc.Issue(entity.UserID(42), entity.ServiceTypeGmail)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token, entity.ServiceTypeGmail)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID(42), userID)
}

func TestStateTokenService_Verify_SingleUse(t *testing.T) {
	svc := createTestStateTokenService(t)

	token, err := svc.Issue(entity.UserID(1), entity.ServiceTypeGitHub)
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.ServiceTypeGitHub)
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.ServiceTypeGitHub)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateTokenService_Verify_WrongProvider(t *testing.T) {
	svc := createTestStateTokenService(t)

	token, err := svc.Issue(entity.UserID(1), entity.ServiceTypeGmail)
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.ServiceTypeSlack)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateTokenService_Verify_Tampered(t *testing.T) {
	svc := createTestStateTokenService(t)

	token, err := svc.Issue(entity.UserID(1), entity.ServiceTypeSlack)
	require.NoError(t, err)

	_, err = svc.Verify(token+"x", entity.ServiceTypeSlack)
	assert.ErrorIs(t, err, ErrStateInvalid)

	_, err = svc.Verify("garbage", entity.ServiceTypeSlack)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateTokenService_Verify_ForeignSecret(t *testing.T) {
	svc := createTestStateTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.State = "a-different-secret"
	other, err := NewStateTokenService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(entity.UserID(1), entity.ServiceTypeGmail)
	require.NoError(t, err)

	_, err = svc.Verify(token, entity.ServiceTypeGmail)
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestNewStateTokenService_FallsBackToAccessSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-only"

	svc, err := NewStateTokenService(cfg)
	require.NoError(t, err)

	token, err := svc.Issue(entity.UserID(5), entity.ServiceTypeGmail)
	require.NoError(t, err)

	userID, err := svc.Verify(token, entity.ServiceTypeGmail)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID(5), userID)
}

func TestNewStateTokenService_RequiresSecret(t *testing.T) {
	_, err := NewStateTokenService(&config.Config{})
	assert.Error(t, err)
}
