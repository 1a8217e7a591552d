package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, RoleHost, cfg.Role)
	require.Equal(t, TransportTCP, cfg.Transport)
	require.Equal(t, uint(1000), cfg.StartingChips)
	require.Equal(t, 30*time.Second, cfg.DialTimeout)
	require.Equal(t, "/table", cfg.WebSocketPath)
	require.False(t, cfg.Discovery.Enabled)
	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `role: guest
name: Bob
address: 192.168.1.
transport: websocket
starting-chips: 500
max-rounds: 3
log-level: debug
discovery:
  enabled: true
  port: 40000
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
	t.Setenv("POKER_NAME", "Carol")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, RoleGuest, cfg.Role)
	require.False(t, cfg.IsHost())
	require.Equal(t, TransportWebSocket, cfg.Transport)
	require.Equal(t, "Carol", cfg.Name)
	require.Equal(t, uint(500), cfg.StartingChips)
	require.Equal(t, 3, cfg.MaxRounds)
	require.True(t, cfg.Discovery.Enabled)
	require.Equal(t, uint16(40000), cfg.Discovery.Port)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"role", func(c *Config) { c.Role = "dealer" }, ErrUnknownRole},
		{"transport", func(c *Config) { c.Transport = "udp" }, ErrUnknownTransport},
		{"chips", func(c *Config) { c.StartingChips = 0 }, ErrNoChips},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, ErrUnknownLogLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.expected)
		})
	}
}

func TestMustLoadPanics(t *testing.T) {
	t.Setenv("POKER_ROLE", "dealer")
	require.Panics(t, func() { MustLoad("") })
}
