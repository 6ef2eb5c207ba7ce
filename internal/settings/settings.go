// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"time"

	"github.com/spf13/pflag"
)

// Settings is the runtime configuration of the envresolve tool itself, as
// opposed to the deployment configuration it resolves. It is populated by
// merging defaults, ENVRESOLVE_* environment variables, an optional JSON file
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type Settings struct {
	// Source controls where the deployment variables are read from and how
	// the process environment overrides them.
	Source Source `envPrefix:"SOURCE_" json:"source"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" json:"log"`

	// Inspector holds settings of the read-only config inspector server.
	Inspector Inspector `envPrefix:"INSPECTOR_" json:"inspector"`

	// Probe holds settings of the doctor's connectivity checks.
	Probe Probe `envPrefix:"PROBE_" json:"probe"`

	// JSONFilePath is the optional path to a JSON settings file.
	// Env: ENVRESOLVE_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Source describes the env file and override policy.
type Source struct {
	// EnvFile is the KEY=VALUE file to load.
	// Env: ENVRESOLVE_SOURCE_ENV_FILE
	EnvFile string `env:"ENV_FILE" json:"env_file"`

	// AllEnv lets every process environment variable override the file,
	// not only the keys declared by the schema.
	// Env: ENVRESOLVE_SOURCE_ALL_ENV
	AllEnv bool `env:"ALL_ENV" json:"all_env"`

	// NoEnv disables process environment overrides entirely.
	// Env: ENVRESOLVE_SOURCE_NO_ENV
	NoEnv bool `env:"NO_ENV" json:"no_env"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: ENVRESOLVE_LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// Format is json or console.
	// Env: ENVRESOLVE_LOG_FORMAT
	Format string `env:"FORMAT" json:"format"`
}

// Inspector holds the config inspector server settings.
type Inspector struct {
	// Address is the TCP address the inspector listens on, "host:port".
	// Env: ENVRESOLVE_INSPECTOR_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// AuthKey names the basic-auth variable whose credential gates /api.
	// Env: ENVRESOLVE_INSPECTOR_AUTH_KEY
	AuthKey string `env:"AUTH_KEY" json:"auth_key"`

	// ReadTimeout bounds reading a request, headers included.
	// Env: ENVRESOLVE_INSPECTOR_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" json:"read_timeout"`
}

// Probe holds connectivity check settings.
type Probe struct {
	// Timeout bounds each probe.
	// Env: ENVRESOLVE_PROBE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" json:"timeout"`
}

// Defaults returns the settings used when no source provides a value.
func Defaults() *Settings {
	return &Settings{
		Source: Source{
			EnvFile: ".env",
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
		Inspector: Inspector{
			Address:     "127.0.0.1:8089",
			AuthKey:     "FLOWER_BASIC_AUTH",
			ReadTimeout: 5 * time.Second,
		},
		Probe: Probe{
			Timeout: 5 * time.Second,
		},
	}
}

// Get loads, merges and validates the tool settings in the following
// priority order (later sources win for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. JSON file (path from the environment or from flags)
//  4. Command-line flags
//
// flags carries the values of the flags the user set; it may be nil.
func Get(flags *Settings) (*Settings, error) {
	return GetWithFlagSet(flags, nil)
}

// GetWithFlagSet is [Get] for flags bound to fs. Boolean flags that fs
// reports as changed win even when set to false.
func GetWithFlagSet(flags *Settings, fs *pflag.FlagSet) (*Settings, error) {
	return newBuilder().
		withDefaults().
		withEnv().
		withJSON(flags).
		withFlags(flags).
		withExplicitBools(flags, fs).
		build()
}
