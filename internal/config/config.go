// Package config provides CLI configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the sdjournalist CLI.
type Config struct {
	// BaseURL is the journalist API endpoint, e.g. "http://localhost:8081"
	// or an onion-service URL reached through a local Tor proxy.
	BaseURL string
	// Username is the journalist account name.
	Username string
	// OTPSecret is an optional base32 TOTP secret. When set, one-time codes
	// are generated locally per attempt; when empty the CLI prompts for a
	// static code.
	OTPSecret string
	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from environment variables, after loading a .env
// file if one is found.
func Load() *Config {
	loadDotEnv()

	return &Config{
		BaseURL:   env.GetString("SD_BASE_URL", "http://localhost:8081"),
		Username:  env.GetString("SD_USERNAME", ""),
		OTPSecret: env.GetString("SD_OTP_SECRET", ""),
		LogLevel:  env.GetString("SD_LOG_LEVEL", "info"),
	}
}

// loadDotEnv searches for a .env file from the current directory up to the
// root and loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
