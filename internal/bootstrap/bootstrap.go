// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap turns the deployment's env file into the typed,
// validated configuration handed to each dependent subsystem.
//
// The flow is load → merge process-environment overrides → validate →
// resolve. Every step runs once, synchronously, before any subsystem starts;
// a failure anywhere is fatal and the caller must not start anything.
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/envresolve/internal/config"
)

// Options selects the env file and how the process environment overrides it.
type Options struct {
	// EnvFile is the KEY=VALUE file to load.
	EnvFile string

	// Environ is the process environment in os.Environ format.
	Environ []string

	// AllEnv lets every variable of Environ override the file. By default
	// only keys declared by Schema are taken from Environ.
	AllEnv bool

	// NoEnv ignores Environ entirely.
	NoEnv bool

	// Schema defaults to config.DefaultSchema.
	Schema *config.Schema
}

func (o Options) schema() *config.Schema {
	if o.Schema != nil {
		return o.Schema
	}
	return config.DefaultSchema
}

// LoadSet reads the env file and applies environment overrides.
func LoadSet(opts Options) (*config.Set, error) {
	fileSet, err := config.LoadFile(opts.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("error loading env file: %w", err)
	}

	if opts.NoEnv {
		return fileSet, nil
	}

	var overrides *config.Set
	if opts.AllEnv {
		overrides = config.FromEnviron(opts.Environ)
	} else {
		overrides = config.FromEnvironFiltered(opts.Environ, opts.schema().Keys())
	}

	return config.MergeOverrides(fileSet, overrides)
}

// Load is [LoadSet] followed by [Resolve].
func Load(opts Options) (*config.Set, *Bundle, error) {
	set, err := LoadSet(opts)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := ResolveWith(set, opts.schema())
	if err != nil {
		return set, nil, err
	}

	return set, bundle, nil
}

// Resolve validates set against config.DefaultSchema and builds the
// per-consumer views. All violations are returned at once, joined.
func Resolve(set *config.Set) (*Bundle, error) {
	return ResolveWith(set, config.DefaultSchema)
}

// ResolveWith is [Resolve] with an explicit schema for the validation pass.
func ResolveWith(set *config.Set, schema *config.Schema) (*Bundle, error) {
	if err := schema.Validate(set); err != nil {
		return nil, err
	}

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	b := &Bundle{}

	db, err := resolveDatabase(set)
	collect(err)
	b.Database = db

	web, err := resolveWeb(set)
	collect(err)
	b.Web = web

	workers, err := resolveWorkers(set)
	collect(err)
	b.Workers = workers

	monitoring, err := resolveMonitoring(set)
	collect(err)
	b.Monitoring = monitoring

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	b.warnings = crossCheck(b)
	for _, key := range schema.Unknown(set) {
		b.warnings = append(b.warnings, fmt.Sprintf("unknown key %s", key))
	}

	return b, nil
}
