package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t, nil)

	cfg := LoadConfig()

	require.Equal(t, ":8000", cfg.Addr)
	require.Equal(t, "dev-secret-change", cfg.SecretKey)
	require.Equal(t, 8*time.Hour, cfg.AccessTokenValidity)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t, nil)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_DSN", "postgres://env")

	cfg := LoadConfig()

	require.Equal(t, "env-secret", cfg.SecretKey)
	require.Equal(t, ":9001", cfg.Addr, "bare port must be normalized to a bind address")
	require.Equal(t, "postgres://env", cfg.DatabaseDSN)
}

func TestLoadConfig_EnvFullBindAddress(t *testing.T) {
	withArgs(t, nil)
	t.Setenv("PORT", "0.0.0.0:8080")

	cfg := LoadConfig()

	require.Equal(t, "0.0.0.0:8080", cfg.Addr)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	withArgs(t, []string{"-a", ":7000", "-s", "flag-secret", "-t", "30"})
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := LoadConfig()

	require.Equal(t, ":7000", cfg.Addr)
	require.Equal(t, "flag-secret", cfg.SecretKey)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenValidity)
}

func TestLoadConfig_UnknownFlagsIgnored(t *testing.T) {
	withArgs(t, []string{"-test.v", "-zzz", "nope"})

	cfg := LoadConfig()

	require.Equal(t, ":8000", cfg.Addr)
}
