package entity

// ServiceType classifies which external service a secret or integration
// belongs to.
type ServiceType string

const (
	ServiceTypeGmail  ServiceType = "gmail"
	ServiceTypeEmail  ServiceType = "email" // Legacy alias for gmail-backed credentials.
	ServiceTypeGitHub ServiceType = "github"
	ServiceTypeSlack  ServiceType = "slack"
	ServiceTypeCustom ServiceType = "custom"
)

// Valid reports whether the service type is one of the known values.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeGmail, ServiceTypeEmail, ServiceTypeGitHub, ServiceTypeSlack, ServiceTypeCustom:
		return true
	}

	return false
}

// Family returns the set of service types that share credentials with t.
// Gmail and email secrets are interchangeable; every other type stands alone.
func (t ServiceType) Family() []ServiceType {
	if t == ServiceTypeGmail || t == ServiceTypeEmail {
		return []ServiceType{ServiceTypeGmail, ServiceTypeEmail}
	}

	return []ServiceType{t}
}

// InFamily reports whether other shares credentials with t.
func (t ServiceType) InFamily(other ServiceType) bool {
	for _, member := range t.Family() {
		if member == other {
			return true
		}
	}

	return false
}

// ConnectionStatus tracks the health of an integration's link to its provider.
type ConnectionStatus string

const (
	ConnectionStatusPending   ConnectionStatus = "pending"
	ConnectionStatusConnected ConnectionStatus = "connected"
	ConnectionStatusError     ConnectionStatus = "error"
)
