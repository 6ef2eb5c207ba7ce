package settings

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the merged [Settings] are usable before startup.
func (s *Settings) validate() error {
	if s.Source.EnvFile == "" {
		return fmt.Errorf("%w: empty env file path", ErrInvalidSourceSettings)
	}
	if s.Source.AllEnv && s.Source.NoEnv {
		return fmt.Errorf("%w: all-env and no-env are mutually exclusive", ErrInvalidSourceSettings)
	}

	if _, err := zerolog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogSettings, err)
	}
	if s.Log.Format != "json" && s.Log.Format != "console" {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogSettings, s.Log.Format)
	}

	var addr NetAddress
	if err := addr.Set(s.Inspector.Address); err != nil {
		return fmt.Errorf("%w: address: %w", ErrInvalidInspectorSettings, err)
	}
	if s.Inspector.AuthKey == "" {
		return fmt.Errorf("%w: empty auth key", ErrInvalidInspectorSettings)
	}
	if s.Inspector.ReadTimeout <= 0 {
		return fmt.Errorf("%w: read timeout must be positive", ErrInvalidInspectorSettings)
	}

	if s.Probe.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidProbeSettings)
	}

	return nil
}
