package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment variable names holding the Pushover credentials.
const (
	TokenEnvVar = "PUSHOVER_TOKEN"
	UserEnvVar  = "PUSHOVER_USER"
)

// Credentials identify the sending application and the receiving user.
type Credentials struct {
	// Token is the Pushover application API token.
	Token string `envconfig:"PUSHOVER_TOKEN"`
	// User is the Pushover user or group key.
	User string `envconfig:"PUSHOVER_USER"`
}

// CredentialsLoader resolves credentials for a single invocation.
type CredentialsLoader func() (Credentials, error)

// LoadCredentials reads the credentials from the process environment.
// It is called on every invocation so that environment changes take effect
// without a restart.
func LoadCredentials() (Credentials, error) {
	var c Credentials
	if err := envconfig.Process("", &c); err != nil {
		return Credentials{}, fmt.Errorf("loading credentials: %w", err)
	}

	var missing []string
	if c.Token == "" {
		missing = append(missing, TokenEnvVar)
	}
	if c.User == "" {
		missing = append(missing, UserEnvVar)
	}
	if len(missing) > 0 {
		return Credentials{}, &ConfigurationError{Missing: missing}
	}

	return c, nil
}
