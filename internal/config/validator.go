package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// PostgresEnvVars must be set when SAVE_BACKEND is postgres
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

const exampleDBPassword = "change_this_secure_password"

// CheckEnv inspects the raw environment before Load. A wrong schema version or
// missing database variables for the postgres backend are errors; settings
// that merely look risky come back as warnings.
func CheckEnv() ([]string, error) {
	_ = godotenv.Load()

	var warnings []string

	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set, assuming %s", ExpectedEnvSchemaVersion))
	default:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, version)
	}

	if os.Getenv("SAVE_BACKEND") == SaveBackendPostgres {
		var missing []string
		for _, envVar := range PostgresEnvVars {
			if os.Getenv(envVar) == "" {
				missing = append(missing, envVar)
			}
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
		if os.Getenv("DB_PASSWORD") == exampleDBPassword {
			warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
		}
	}

	if os.Getenv("TEXTURE_API_URL") != "" && os.Getenv("TEXTURE_API_KEY") == "" {
		warnings = append(warnings, "TEXTURE_API_URL is set without TEXTURE_API_KEY - forest texture requests will likely be refused")
	}
	if os.Getenv("API_KEY") == "" && os.Getenv("ENVIRONMENT") == "prod" {
		warnings = append(warnings, "API_KEY is empty in prod - the farm API accepts unauthenticated requests")
	}

	return warnings, nil
}
