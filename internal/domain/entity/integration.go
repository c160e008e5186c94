package entity

import "time"

// Integration config keys shared between the sync engine and the API surface.
const (
	ConfigKeyStatus         = "status"
	ConfigKeyLastSync       = "last_sync"
	ConfigKeyEmailAddress   = "email_address"
	ConfigKeyGitHubUsername = "github_username"
	ConfigKeyWorkspaceName  = "workspace_name"
	ConfigKeyTeamID         = "team_id"
)

// IntegrationConfig is the free-form JSON configuration attached to an
// integration. Providers store display metadata and sync state here.
type IntegrationConfig map[string]any

// Clone returns a shallow copy, so callers can mutate without aliasing.
func (c IntegrationConfig) Clone() IntegrationConfig {
	if c == nil {
		return IntegrationConfig{}
	}

	cloned := make(IntegrationConfig, len(c))
	for k, v := range c {
		cloned[k] = v
	}

	return cloned
}

// String returns the string value stored under key, or "" when absent.
func (c IntegrationConfig) String(key string) string {
	if c == nil {
		return ""
	}
	if v, ok := c[key].(string); ok {
		return v
	}

	return ""
}

// Status returns the recorded connection status, defaulting to pending.
func (c IntegrationConfig) Status() ConnectionStatus {
	if s := c.String(ConfigKeyStatus); s != "" {
		return ConnectionStatus(s)
	}

	return ConnectionStatusPending
}

// Integration links a user to an external service through a secret.
type Integration struct {
	ID          int64             // Auto-incrementing identifier for the integration.
	UserID      UserID            // The owner of this integration.
	ServiceType ServiceType       // Which service this integration connects to.
	SecretID    *int64            // The credential backing this integration; nil when orphaned.
	Config      IntegrationConfig // Provider metadata and sync state.
	IsActive    bool              // Inactive integrations are hidden from provider facades.
	CreatedAt   time.Time         // Timestamp of when this integration was created.
	UpdatedAt   time.Time         // Timestamp of the last modification.
}

// HasSecret reports whether the integration is bound to a credential.
func (i *Integration) HasSecret() bool {
	return i.SecretID != nil && *i.SecretID > 0
}
