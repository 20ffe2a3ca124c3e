package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any
// are invalid. It should be called after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.GetString("dotnet_path") == "" {
		errors = append(errors, "dotnet_path must not be empty")
	}
	if viper.GetString("project") == "" {
		errors = append(errors, "project must not be empty")
	}

	switch cfg := viper.GetString("configuration"); cfg {
	case "Debug", "Release":
	case "":
		errors = append(errors, "configuration must not be empty")
	default:
		errors = append(errors, fmt.Sprintf("configuration must be Debug or Release, got: %s", cfg))
	}

	if viper.GetString("artifacts_dir") == "" {
		errors = append(errors, "artifacts_dir must not be empty")
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
