package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	Origins            []string
	RateLimit          string
	ResetSchemaOnStart bool
}

// LoadConfig loads configuration from environment variables and .env files if
// present. APP_ENV selects an environment-specific file (config/.env.<env>);
// a plain .env is tried as fallback. Real environment variables override both.
func LoadConfig() (*Config, error) {
	// Read straight from the OS environment: viper's AutomaticEnv is not in
	// effect yet at this point.
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	// Attempt to load env files, ignore errors if they don't exist
	_ = godotenv.Load(fmt.Sprintf("config/.env.%s", env))
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("ORIGINS", "http://localhost:4200")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("RESET_SCHEMA_ON_START", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	origins := viper.GetString("ORIGINS")
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.Origins = append(cfg.Origins, origin)
		}
	}

	cfg.ResetSchemaOnStart = viper.GetBool("RESET_SCHEMA_ON_START")
	if cfg.ResetSchemaOnStart && cfg.IsProduction {
		// A destructive reset is a dev/test seam only.
		log.Println("Warning: RESET_SCHEMA_ON_START is ignored because IS_PRODUCTION is set.")
		cfg.ResetSchemaOnStart = false
	}

	return cfg, nil
}
