package config

import (
	"testing"
	"time"

	"github.com/gabapcia/walletlink/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "walletlink", cfg.Telemetry.ServiceName)
		assert.Equal(t, "https://etherscan.io", cfg.Explorer.BaseURL)
		assert.Contains(t, cfg.Explorer.UserAgent, "Mozilla/5.0")
		assert.Equal(t, 10*time.Second, cfg.Explorer.Timeout)
		assert.Equal(t, 0, cfg.Explorer.RetryMax)
		assert.Equal(t, uint(1), cfg.Explorer.HandshakeAttempts)
		assert.Equal(t, 50, cfg.Scan.MaxConcurrency)
		assert.Equal(t, "http://ip-api.com/json/", cfg.IPAPI.URL)
		assert.Equal(t, 10*time.Second, cfg.IPAPI.Timeout)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Setenv("WALLETLINK_LOG_LEVEL", "debug")
		t.Setenv("WALLETLINK_TELEMETRY_ENABLED", "true")
		t.Setenv("WALLETLINK_EXPLORER_BASE_URL", "https://sepolia.etherscan.io")
		t.Setenv("WALLETLINK_EXPLORER_TIMEOUT", "3s")
		t.Setenv("WALLETLINK_EXPLORER_HANDSHAKE_ATTEMPTS", "3")
		t.Setenv("WALLETLINK_SCAN_MAX_CONCURRENCY", "8")
		t.Setenv("WALLETLINK_IPAPI_URL", "http://localhost:8080/json/")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "https://sepolia.etherscan.io", cfg.Explorer.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Explorer.Timeout)
		assert.Equal(t, uint(3), cfg.Explorer.HandshakeAttempts)
		assert.Equal(t, 8, cfg.Scan.MaxConcurrency)
		assert.Equal(t, "http://localhost:8080/json/", cfg.IPAPI.URL)
	})

	t.Run("rejects values that fail validation", func(t *testing.T) {
		t.Setenv("WALLETLINK_SCAN_MAX_CONCURRENCY", "0")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("rejects a zero handshake attempt count", func(t *testing.T) {
		t.Setenv("WALLETLINK_EXPLORER_HANDSHAKE_ATTEMPTS", "0")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("rejects malformed values", func(t *testing.T) {
		t.Setenv("WALLETLINK_EXPLORER_TIMEOUT", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}
