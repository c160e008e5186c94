// Package crypto provides the credential encryption implementation.
package crypto

import (
	"github.com/fernet/fernet-go"
	"github.com/pkg/errors"

	"devfriend/config"
	"devfriend/internal/domain/service"
)

// fernetKeyLength is the urlsafe-base64 length of a 256-bit Fernet key.
const fernetKeyLength = 44

// fernetEncryptor implements service.Encryptor with Fernet symmetric tokens.
// Tokens are authenticated, so any tampering is detected on decrypt.
type fernetEncryptor struct {
	key *fernet.Key
}

// NewFernetEncryptor builds an encryptor from the configured key.
// The key must be exactly 44 urlsafe-base64 characters.
func NewFernetEncryptor(cfg *config.Config) (service.Encryptor, error) {
	if cfg.Encryption == nil || cfg.Encryption.Key == "" {
		return nil, errors.New("encryption key must be provided")
	}
	if len(cfg.Encryption.Key) != fernetKeyLength {
		return nil, errors.Errorf("encryption key must be %d characters, got %d", fernetKeyLength, len(cfg.Encryption.Key))
	}

	key, err := fernet.DecodeKey(cfg.Encryption.Key)
	if err != nil {
		return nil, errors.Wrap(err, "decode encryption key")
	}

	return &fernetEncryptor{key: key}, nil
}

// Encrypt turns a plaintext payload into a Fernet token.
func (e *fernetEncryptor) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), e.key)
	if err != nil {
		return "", errors.Wrap(err, "encrypt payload")
	}

	return string(token), nil
}

// Decrypt recovers the plaintext from a token. Invalid, tampered or foreign
// tokens yield an empty string, never an error: stored garbage degrades to
// missing credentials.
func (e *fernetEncryptor) Decrypt(token string) string {
	// TTL 0 disables expiry; stored credentials do not age out.
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{e.key})
	if plaintext == nil {
		return ""
	}

	return string(plaintext)
}
