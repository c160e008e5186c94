package crypto

import (
	"testing"

	"devfriend/config"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEncryptor(t *testing.T) (*config.Config, *fernetEncryptor) {
	var key fernet.Key
	require.NoError(t, key.Generate())

	cfg := &config.Config{
		Encryption: &config.EncryptionConfig{Key: key.Encode()},
	}

	encryptor, err := NewFernetEncryptor(cfg)
	require.NoError(t, err)

	return cfg, encryptor.(*fernetEncryptor)
}

func TestFernetEncryptor_RoundTrip(t *testing.T) {
	_, encryptor := createTestEncryptor(t)

	plaintext := `{"client_id":"abc","refresh_token":"xyz"}`

	token, err := encryptor.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, plaintext, token)

	assert.Equal(t, plaintext, encryptor.Decrypt(token))
}

func TestFernetEncryptor_Decrypt_Tampered(t *testing.T) {
	_, encryptor := createTestEncryptor(t)

	token, err := encryptor.Encrypt("payload")
	require.NoError(t, err)

	tampered := []byte(token)
	tampered[len(tampered)/2] ^= 0xff

	assert.Empty(t, encryptor.Decrypt(string(tampered)))
}

func TestFernetEncryptor_Decrypt_Garbage(t *testing.T) {
	_, encryptor := createTestEncryptor(t)

	assert.Empty(t, encryptor.Decrypt("not-a-fernet-token"))
	assert.Empty(t, encryptor.Decrypt(""))
}

func TestFernetEncryptor_Decrypt_ForeignKey(t *testing.T) {
	_, encryptor := createTestEncryptor(t)
	_, other := createTestEncryptor(t)

	token, err := other.Encrypt("payload")
	require.NoError(t, err)

	assert.Empty(t, encryptor.Decrypt(token))
}

func TestNewFernetEncryptor_KeyValidation(t *testing.T) {
	_, err := NewFernetEncryptor(&config.Config{})
	assert.Error(t, err)

	_, err = NewFernetEncryptor(&config.Config{
		Encryption: &config.EncryptionConfig{Key: "too-short"},
	})
	assert.Error(t, err)
}
