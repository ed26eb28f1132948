package zin

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadConfig(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, `
strict_closure_operands = true
parallelism = 4
log_level = "debug"
`)

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, config.StrictClosureOperands)
		assert.Equal(t, 4, config.Parallelism)
		assert.Equal(t, "debug", config.LogLevel)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, "parallelism = 2\n")

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().LogLevel, config.LogLevel)
		assert.False(t, config.StrictClosureOperands)
	})

	t.Run("unknown keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, "environment = { x = 1 }\n")

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "unknown keys")
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, "parallelism = \n")

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("negative parallelism", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, "parallelism = -1\n")

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "parallelism")
	})

	t.Run("bad log level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		writeFile(t, path, "log_level = \"loud\"\n")

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "log_level")
	})
}

func TestFindConfig(t *testing.T) {
	t.Run("walks up to parent", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ConfigFileName), "strict_closure_operands = true\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		path, config, err := FindConfig(nested)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, ConfigFileName), path)
		require.True(t, config.StrictClosureOperands)
	})

	t.Run("stops at .git", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, ConfigFileName), "parallelism = 1\n")
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
		nested := filepath.Join(repo, "src")
		require.NoError(t, os.MkdirAll(nested, 0755))

		path, config, err := FindConfig(nested)
		require.NoError(t, err)
		require.Empty(t, path)
		require.Nil(t, config)
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))
		writeFile(t, filepath.Join(root, ConfigFileName), "parallelism = \"many\"\n")

		_, _, err := FindConfig(root)
		require.Error(t, err)
	})
}

func TestConfigLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: "warn"}.Logger(&buf)

	logger.Info("quiet")
	logger.Warn("loud")

	require.NotContains(t, buf.String(), "quiet")
	require.Contains(t, buf.String(), "loud")

	level, err := Config{}.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}
