package entity

import "time"

// RedactedValue is the placeholder returned in place of an encrypted payload
// whenever a secret is read outside of the single-secret detail path.
const RedactedValue = "*****"

// Secret stores an encrypted credential payload belonging to a user.
// The plaintext is a JSON document whose shape depends on the service type.
type Secret struct {
	ID             int64       // Auto-incrementing identifier for the secret.
	UserID         UserID      // The owner of this secret.
	Name           string      // Human-readable label, e.g. "Gmail - alice@example.com".
	ServiceType    ServiceType // Which service the credential belongs to.
	EncryptedValue string      // Fernet-encrypted JSON payload, or RedactedValue on list reads.
	CreatedAt      time.Time   // Timestamp of when this secret was created.
	UpdatedAt      time.Time   // Timestamp of the last modification.
}

// Redacted reports whether the payload has been masked for listing.
func (s *Secret) Redacted() bool {
	return s.EncryptedValue == RedactedValue
}
