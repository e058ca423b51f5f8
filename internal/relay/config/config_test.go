package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, Config{
		ListenAddr:     ":8787",
		WebhookURL:     "http://localhost:5678/webhook/send-employee-email",
		ForwardTimeout: 10 * time.Second,
		AllowedOrigin:  "*",
		LogLevel:       "info",
	}, c)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", ":9000", "-w", "http://n8n/hook", "-u", "admin", "-p", "secret", "-t", "3", "-o", "https://app.example", "-l", "debug"},
			expected: &Config{
				ListenAddr:      ":9000",
				WebhookURL:      "http://n8n/hook",
				WebhookUser:     "admin",
				WebhookPassword: "secret",
				ForwardTimeout:  3 * time.Second,
				AllowedOrigin:   "https://app.example",
				LogLevel:        "debug",
			},
		},
		{
			name:        "bad timeout",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("ROSTER_CONFIG", "")

	path := filepath.Join(t.TempDir(), "relay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"webhook_url": "http://from-json/hook",
		"webhook_user": "admin",
		"webhook_password": "pw",
		"forward_timeout": "4s"
	}`), 0o600))

	os.Args = []string{"relay", "-config", path, "-p", "from-flag"}
	cfg := LoadConfig()

	assert.Equal(t, ":8787", cfg.ListenAddr)
	assert.Equal(t, "http://from-json/hook", cfg.WebhookURL)
	assert.Equal(t, "admin", cfg.WebhookUser)
	assert.Equal(t, "from-flag", cfg.WebhookPassword)
	assert.Equal(t, 4*time.Second, cfg.ForwardTimeout)
	assert.Equal(t, "*", cfg.AllowedOrigin)
}

func Test_parseJson_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"forward_timeout": true}`), 0o600))
	os.Args = []string{"relay", "-c", path}

	require.Panics(t, func() { parseJson(&Config{}) })
}
