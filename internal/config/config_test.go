package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.groq.com", c.API.BaseURL)
	assert.Equal(t, "llama-3.1-8b-instant", c.API.Model)
	assert.Equal(t, 60, c.API.TimeoutSeconds)
	assert.Equal(t, 64*1024, c.Query.MaxSchemaBytes)
	assert.False(t, c.Query.ReadOnly)
	assert.Empty(t, c.Database.Conn)
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	path := filepath.Join(t.TempDir(), "text2sql.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  conn: sqlite:chinook.db
api:
  key: file-key
  model: llama-3.3-70b-versatile
query:
  read_only: true
  max_schema_bytes: 1024
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite:chinook.db", c.Database.Conn)
	assert.Equal(t, "file-key", c.API.Key)
	assert.Equal(t, "llama-3.3-70b-versatile", c.API.Model)
	assert.True(t, c.Query.ReadOnly)
	assert.Equal(t, 1024, c.Query.MaxSchemaBytes)
	// Unset fields keep their defaults.
	assert.Equal(t, "https://api.groq.com", c.API.BaseURL)
}

func TestLoadEnvOverridesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text2sql.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  key: file-key\n"), 0o644))

	t.Setenv(EnvAPIKey, "env-key")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", c.API.Key)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
