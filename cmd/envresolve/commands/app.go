// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the envresolve command line.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/envresolve/internal/bootstrap"
	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/MKhiriev/envresolve/internal/settings"
	"github.com/MKhiriev/envresolve/models"
	"github.com/spf13/cobra"
)

// App carries what every command shares: build info, the global flags and,
// once the root command has run its pre-run hook, the merged settings and
// the logger.
type App struct {
	BuildInfo models.AppBuildInfo

	// Environ returns the process environment. Tests replace it.
	Environ func() []string

	flags    *settings.Settings
	settings *settings.Settings
	logger   *logger.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewApp constructs an App reading the real process environment.
func NewApp(buildInfo models.AppBuildInfo) *App {
	return &App{
		BuildInfo: buildInfo,
		Environ:   os.Environ,
		logger:    logger.New(os.Stderr, "envresolve", logger.Options{}),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Execute runs the command line and returns the process exit status.
func (a *App) Execute(args []string) int {
	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	if err := root.Execute(); err != nil {
		a.report(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func (a *App) init(cmd *cobra.Command) error {
	s, err := settings.GetWithFlagSet(a.flags, cmd.Flags())
	if err != nil {
		return err
	}

	a.settings = s
	a.logger = logger.New(a.stderr, cmd.Name(), logger.Options{Level: s.Log.Level, Format: s.Log.Format}).
		WithEnvFile(s.Source.EnvFile)
	a.logger.Debug().Bool("all_env", s.Source.AllEnv).
		Bool("no_env", s.Source.NoEnv).Msg("settings resolved")

	return nil
}

func (a *App) options() bootstrap.Options {
	return bootstrap.Options{
		EnvFile: a.settings.Source.EnvFile,
		Environ: a.Environ(),
		AllEnv:  a.settings.Source.AllEnv,
		NoEnv:   a.settings.Source.NoEnv,
	}
}

// load reads and merges the env file without resolving it.
func (a *App) load() (*config.Set, error) {
	set, err := bootstrap.LoadSet(a.options())
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Object("set", set).Msg("env file loaded")

	return set, nil
}

// resolve loads the env file and resolves every consumer view.
func (a *App) resolve() (*config.Set, *bootstrap.Bundle, error) {
	set, err := a.load()
	if err != nil {
		return nil, nil, err
	}

	bundle, err := bootstrap.Resolve(set)
	if err != nil {
		return set, nil, err
	}
	for _, w := range bundle.Warnings() {
		a.logger.Warn().Msg(w)
	}

	return set, bundle, nil
}

// report writes one diagnostic per configuration error, naming the key and
// the kind. Values of secret keys are never printed.
func (a *App) report(w io.Writer, err error) {
	cfgErrs := config.Errors(err)
	if len(cfgErrs) == 0 {
		a.logger.Error().Err(err).Msg("envresolve failed")
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	for _, e := range cfgErrs {
		a.logger.Error().
			Str("kind", e.Kind.String()).
			Str("key", e.Key).
			Int("line", e.Line).
			Str("reason", e.Reason).
			Msg("configuration error")
	}

	// a single error keeps its wrapping context, e.g. the env file path
	if len(cfgErrs) == 1 {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	for _, e := range cfgErrs {
		fmt.Fprintf(w, "Error: %s\n", e.Error())
	}
}
