// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ENVRESOLVE_CONFIG": "/path/to/settings.json",

		"ENVRESOLVE_SOURCE_ENV_FILE": "/srv/app/.env",
		"ENVRESOLVE_SOURCE_ALL_ENV":  "true",

		"ENVRESOLVE_LOG_LEVEL": "debug",

		"ENVRESOLVE_INSPECTOR_ADDRESS":      "0.0.0.0:9000",
		"ENVRESOLVE_INSPECTOR_AUTH_KEY":     "REDMON_BASIC_AUTH",
		"ENVRESOLVE_INSPECTOR_READ_TIMEOUT": "3s",

		"ENVRESOLVE_PROBE_TIMEOUT": "2s",
	}
	setEnvVars(t, envVars)

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/settings.json", s.JSONFilePath)
	assert.Equal(t, "/srv/app/.env", s.Source.EnvFile)
	assert.True(t, s.Source.AllEnv)
	assert.False(t, s.Source.NoEnv)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, "0.0.0.0:9000", s.Inspector.Address)
	assert.Equal(t, "REDMON_BASIC_AUTH", s.Inspector.AuthKey)
	assert.Equal(t, 3*time.Second, s.Inspector.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.Probe.Timeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ENVRESOLVE_LOG_LEVEL": "warn",
	})

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, Source{}, s.Source)
	assert.Equal(t, Inspector{}, s.Inspector)
	assert.Equal(t, Probe{}, s.Probe)
	assert.Empty(t, s.JSONFilePath)
}

func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"LOG_LEVEL": "debug",
		"CONFIG":    "/etc/other.json",
	})

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Settings{}, *s)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ENVRESOLVE_PROBE_TIMEOUT": "soon",
	})

	// Act
	s := &Settings{}
	err := parseEnv(s)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env settings")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"minutes", "2m", 2 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"combined", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{
				"ENVRESOLVE_INSPECTOR_READ_TIMEOUT": tt.envValue,
			})

			// Act
			s := &Settings{}
			err := parseEnv(s)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Inspector.ReadTimeout)
		})
	}
}

// Helpers

var settingsEnvKeys = []string{
	"ENVRESOLVE_CONFIG",
	"ENVRESOLVE_SOURCE_ENV_FILE",
	"ENVRESOLVE_SOURCE_ALL_ENV",
	"ENVRESOLVE_SOURCE_NO_ENV",
	"ENVRESOLVE_LOG_LEVEL",
	"ENVRESOLVE_LOG_FORMAT",
	"ENVRESOLVE_INSPECTOR_ADDRESS",
	"ENVRESOLVE_INSPECTOR_AUTH_KEY",
	"ENVRESOLVE_INSPECTOR_READ_TIMEOUT",
	"ENVRESOLVE_PROBE_TIMEOUT",
	"LOG_LEVEL",
	"CONFIG",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range settingsEnvKeys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
