package graphley_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/graphley"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := graphley.DefaultConfig()
	assert.Equal(t, graphley.DefaultURL, cfg.URL)
	assert.Equal(t, graphley.DefaultVersion, cfg.Version)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.Timeout))
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("FullFile", func(t *testing.T) {
		path := writeConfig(t, `
url: http://graph.internal:64210
version: v2
timeout: 250ms
`)
		cfg, err := graphley.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "http://graph.internal:64210", cfg.URL)
		assert.Equal(t, "v2", cfg.Version)
		assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Timeout))
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeConfig(t, "url: http://graph.internal:64210\n")
		cfg, err := graphley.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, graphley.DefaultVersion, cfg.Version)
		assert.Equal(t, 10*time.Second, time.Duration(cfg.Timeout))
	})

	t.Run("InvalidURL", func(t *testing.T) {
		path := writeConfig(t, "url: not-a-url\n")
		_, err := graphley.LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidDuration", func(t *testing.T) {
		path := writeConfig(t, "timeout: soon\n")
		_, err := graphley.LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := graphley.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestNewClientFromConfig(t *testing.T) {
	t.Run("NilUsesDefaults", func(t *testing.T) {
		client, err := graphley.NewClientFromConfig(nil)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidConfigRejected", func(t *testing.T) {
		_, err := graphley.NewClientFromConfig(&graphley.Config{URL: "", Version: "v1"})
		assert.Error(t, err)
	})
}
