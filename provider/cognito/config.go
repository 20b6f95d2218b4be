package cognito

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvUserPoolID = "COGNITO_USER_POOL_ID"
	EnvClientID   = "COGNITO_CLIENT_ID"
	EnvRegion     = "COGNITO_REGION"
)

// Config holds the Cognito user pool coordinates.
type Config struct {
	// UserPoolID is the pool identifier (e.g., "us-east-1_AbCdEfGhI").
	UserPoolID string

	// ClientID is the app client identifier. The client must allow the
	// USER_PASSWORD_AUTH flow and have no client secret.
	ClientID string

	// Region overrides the region derived from the pool ID (optional).
	Region string

	// Endpoint overrides the service endpoint, for local emulators
	// (optional).
	Endpoint string
}

// DefaultConfig returns a Config for the given pool and client, deriving
// the region from the pool ID prefix.
func DefaultConfig(userPoolID, clientID string) Config {
	return Config{
		UserPoolID: strings.TrimSpace(userPoolID),
		ClientID:   strings.TrimSpace(clientID),
	}
}

// ConfigFromEnv reads the pool coordinates from the environment.
func ConfigFromEnv() Config {
	return Config{
		UserPoolID: strings.TrimSpace(os.Getenv(EnvUserPoolID)),
		ClientID:   strings.TrimSpace(os.Getenv(EnvClientID)),
		Region:     strings.TrimSpace(os.Getenv(EnvRegion)),
	}
}

// IsConfigured reports whether both pool and client identifiers are set.
func (c Config) IsConfigured() bool {
	return c.UserPoolID != "" && c.ClientID != ""
}

func (c Config) region() string {
	if c.Region != "" {
		return c.Region
	}

	// Pool IDs are "{region}_{id}".
	if idx := strings.Index(c.UserPoolID, "_"); idx > 0 {
		return c.UserPoolID[:idx]
	}

	return ""
}

func (c Config) issuerURL() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.region(), c.UserPoolID)
}

func (c Config) jwksURL() string {
	return c.issuerURL() + "/.well-known/jwks.json"
}
