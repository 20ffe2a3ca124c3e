package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchctl")
	}

	viper.SetEnvPrefix("BENCHCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	SetDefaults()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// SetDefaults registers the default configuration values.
func SetDefaults() {
	viper.SetDefault("dotnet_path", "dotnet")
	viper.SetDefault("project", "benchmarks/Benchmarks.csproj")
	viper.SetDefault("configuration", "Release")
	viper.SetDefault("artifacts_dir", "BenchmarkDotNet.Artifacts/results")
	viper.SetDefault("verbose", false)
}
