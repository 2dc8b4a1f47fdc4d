package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SD_BASE_URL", "")
	t.Setenv("SD_USERNAME", "")
	t.Setenv("SD_OTP_SECRET", "")
	t.Setenv("SD_LOG_LEVEL", "")

	cfg := Load()
	require.Equal(t, "http://localhost:8081", cfg.BaseURL)
	require.Empty(t, cfg.Username)
	require.Empty(t, cfg.OTPSecret)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SD_BASE_URL", "https://example.onion/api-root")
	t.Setenv("SD_USERNAME", "journalist")
	t.Setenv("SD_OTP_SECRET", "GEZDGNBVGY3TQOJQ")
	t.Setenv("SD_LOG_LEVEL", "debug")

	cfg := Load()
	require.Equal(t, "https://example.onion/api-root", cfg.BaseURL)
	require.Equal(t, "journalist", cfg.Username)
	require.Equal(t, "GEZDGNBVGY3TQOJQ", cfg.OTPSecret)
	require.Equal(t, "debug", cfg.LogLevel)
}
