package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.json")

	jsonBody := `{
		"source": { "env_file": "deploy/.env", "no_env": true },
		"log": { "level": "error" },
		"inspector": {
			"address": "127.0.0.1:7000",
			"auth_key": "REDMON_BASIC_AUTH",
			"read_timeout": "10s"
		},
		"probe": { "timeout": "1s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	s, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "deploy/.env", s.Source.EnvFile)
	assert.True(t, s.Source.NoEnv)
	assert.False(t, s.Source.AllEnv)
	assert.Equal(t, "error", s.Log.Level)
	assert.Equal(t, "127.0.0.1:7000", s.Inspector.Address)
	assert.Equal(t, "REDMON_BASIC_AUTH", s.Inspector.AuthKey)
	assert.Equal(t, 10*time.Second, s.Inspector.ReadTimeout)
	assert.Equal(t, time.Second, s.Probe.Timeout)
	assert.Empty(t, s.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	s, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	s, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "error decoding json settings")
}

func TestParseJSON_UnknownField(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "unknown.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ "logging": { "level": "debug" } }`), 0o600))

	// Act
	s, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ "probe": { "timeout": "not-a-duration" } }`), 0o600))

	// Act
	s, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "error decoding json settings")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	s, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, Settings{}, *s)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
