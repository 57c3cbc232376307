package environ

import (
	"fmt"
	"os"
	"strings"
)

// MustGetEnv returns an error naming every variable in envVars that is unset or empty.
func MustGetEnv(envVars ...string) error {
	var missing []string
	for _, envVar := range envVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("required environment variables %q are not set", strings.Join(missing, ", "))
	}

	return nil
}

// GetOrDefault returns the value of envVar, or defaultValue if it's unset or empty.
func GetOrDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}

	return defaultValue
}
