package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"devfriend/config"
	"devfriend/internal/domain/entity"
	"devfriend/internal/domain/service"
)

// stateTTL bounds how long an OAuth round trip may take.
const stateTTL = 10 * time.Minute

// ErrStateInvalid is returned for any state token that fails verification:
// bad signature, expired, wrong provider, or already used.
var ErrStateInvalid = errors.New("invalid oauth state token")

// stateTokenService signs OAuth state as a short-lived JWT and tracks nonces
// so each token verifies at most once.
type stateTokenService struct {
	secret string

	nonceMutex sync.Mutex
	nonces     map[string]time.Time // nonce -> expiry
}

// NewStateTokenService is the constructor for stateTokenService.
func NewStateTokenService(cfg *config.Config) (service.StateTokenService, error) {
	secret := cfg.SecretKey.State
	if secret == "" {
		// Fall back to the access secret so a single-key deployment works.
		secret = cfg.SecretKey.Access
	}
	if secret == "" {
		return nil, errors.New("state token secret must be provided")
	}

	return &stateTokenService{
		secret: secret,
		nonces: make(map[string]time.Time),
	}, nil
}

// Issue creates a state token binding the flow to a user and provider.
func (s *stateTokenService) Issue(userID entity.UserID, provider entity.ServiceType) (string, error) {
	nonce := uuid.NewString()
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      userID.Int64(),
		"provider": string(provider),
		"nonce":    nonce,
		"iat":      now.Unix(),
		"exp":      now.Add(stateTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	s.storeNonce(nonce, now.Add(stateTTL))

	return token, nil
}

// Verify checks signature, expiry, provider binding and single-use.
func (s *stateTokenService) Verify(tokenString string, provider entity.ServiceType) (entity.UserID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrStateInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrStateInvalid
	}

	if got, _ := claims["provider"].(string); got != string(provider) {
		return 0, ErrStateInvalid
	}

	nonce, _ := claims["nonce"].(string)
	if nonce == "" || !s.consumeNonce(nonce) {
		return 0, ErrStateInvalid
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return 0, ErrStateInvalid
	}

	return entity.UserID(int64(sub)), nil
}

func (s *stateTokenService) storeNonce(nonce string, expiry time.Time) {
	s.nonceMutex.Lock()
	defer s.nonceMutex.Unlock()

	s.nonces[nonce] = expiry
	s.cleanupExpiredNonces()
}

// consumeNonce removes the nonce, reporting whether it was still live.
// Removal on first use is what makes state tokens single-use.
func (s *stateTokenService) consumeNonce(nonce string) bool {
	s.nonceMutex.Lock()
	defer s.nonceMutex.Unlock()

	expiry, exists := s.nonces[nonce]
	delete(s.nonces, nonce)

	return exists && time.Now().Before(expiry)
}

func (s *stateTokenService) cleanupExpiredNonces() {
	now := time.Now()
	for nonce, expiry := range s.nonces {
		if now.After(expiry) {
			delete(s.nonces, nonce)
		}
	}
}
