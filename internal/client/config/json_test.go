package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("ROSTER_CONFIG", "")

	t.Run("loads all fields", func(t *testing.T) {
		path := writeTempFile(t, `{
			"store_endpoint_addr": "store:50051",
			"relay_url": "http://relay:8787/send-employee-email",
			"relay_timeout": "5s",
			"log_level": "debug",
			"online_check_interval": "1m"
		}`)
		os.Args = []string{"cli", "-c", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			StoreEndpointAddr: "store:50051",
			RelayURL:          "http://relay:8787/send-employee-email",
			RelayTimeout:      5 * time.Second,
			LogLevel:          "debug",

			OnlineCheckInterval: time.Minute,
		}, cfg)
	})

	t.Run("numeric timeout is nanoseconds", func(t *testing.T) {
		path := writeTempFile(t, `{"relay_timeout": 2000000000}`)
		os.Args = []string{"cli", "-config", path}

		cfg := &Config{RelayURL: "keep"}
		parseJson(cfg)

		assert.Equal(t, 2*time.Second, cfg.RelayTimeout)
		assert.Equal(t, "keep", cfg.RelayURL)
	})

	t.Run("no file → no changes", func(t *testing.T) {
		os.Args = []string{"cli"}

		cfg := &Config{StoreEndpointAddr: "x:1", RelayTimeout: time.Second}
		parseJson(cfg)

		assert.Equal(t, &Config{StoreEndpointAddr: "x:1", RelayTimeout: time.Second}, cfg)
	})

	t.Run("invalid duration → panics", func(t *testing.T) {
		path := writeTempFile(t, `{"relay_timeout": "soon"}`)
		os.Args = []string{"cli", "-c", path}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
