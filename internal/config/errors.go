package config

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned when required credentials are missing.
type ConfigurationError struct {
	// Missing lists the unset or empty variables.
	Missing []string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("%s and %s environment variables must be set", TokenEnvVar, UserEnvVar)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" (missing: %s)", strings.Join(e.Missing, ", "))
	}
	return msg
}
