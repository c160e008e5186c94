package service

// Encryptor defines the interface for credential encryption at rest.
//
// Decrypt is deliberately lenient: a tampered, truncated or foreign token
// yields an empty string rather than an error, so stored garbage degrades to
// "no credentials" instead of failing reads.
type Encryptor interface {
	// Encrypt turns a plaintext payload into an opaque token.
	Encrypt(plaintext string) (string, error)

	// Decrypt recovers the plaintext from a token, or returns "" when the
	// token is invalid.
	Decrypt(token string) string
}
