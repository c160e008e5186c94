package auth

import (
	"testing"
	"time"

	"devfriend/config"
	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := createTestJWTService(t)

	token, err := svc.GenerateToken(entity.UserID(42), "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := createTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a-different-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateToken(entity.UserID(1), "bob@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := createTestJWTService(t)

	_, err := svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := &jwtService{secret: "test-access-secret", accessTTL: -time.Minute}

	token, err := svc.GenerateToken(entity.UserID(7), "carol@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
