package settings

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type builder struct {
	layers []*Settings
	// explicit runs after the merge for values mergo treats as unset
	explicit []func(*Settings)
	err      error
}

func newBuilder() *builder {
	return &builder{
		layers: make([]*Settings, 0, 4),
	}
}

func (b *builder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	s := new(Settings)
	for _, layer := range b.layers {
		if err := mergo.Merge(s, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}
	for _, apply := range b.explicit {
		apply(s)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (b *builder) withDefaults() *builder {
	b.layers = append(b.layers, Defaults())
	return b
}

func (b *builder) withEnv() *builder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envSettings)
	return b
}

func (b *builder) withFlags(flags *Settings) *builder {
	if flags != nil {
		b.layers = append(b.layers, flags)
	}
	return b
}

// withExplicitBools re-applies the boolean flags fs reports as changed, so an
// explicit false overrides true from the environment or the JSON file.
func (b *builder) withExplicitBools(flags *Settings, fs *pflag.FlagSet) *builder {
	if flags == nil || fs == nil {
		return b
	}

	bools := map[string]func(dst *Settings){
		flagAllEnv: func(dst *Settings) { dst.Source.AllEnv = flags.Source.AllEnv },
		flagNoEnv:  func(dst *Settings) { dst.Source.NoEnv = flags.Source.NoEnv },
	}
	for name, apply := range bools {
		if fs.Changed(name) {
			b.explicit = append(b.explicit, apply)
		}
	}

	return b
}

// withJSON loads the JSON file named by the highest-priority layer that sets
// one; flags beat the environment.
func (b *builder) withJSON(flags *Settings) *builder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}
	if flags != nil && flags.JSONFilePath != "" {
		jsonPath = flags.JSONFilePath
	}

	if jsonPath != "" {
		jsonSettings, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.layers = append(b.layers, jsonSettings)
	}

	return b
}
