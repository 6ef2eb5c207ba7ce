package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// MergeOverrides returns a new Set where every key of overrides takes the
// override's value and keys present on one side only pass through unchanged.
// Keys keep base's order, followed by override-only keys in overrides' order.
// Neither argument is modified.
func MergeOverrides(base, overrides *Set) (*Set, error) {
	values := base.Map()
	if err := mergo.Merge(&values, overrides.Map(), mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging overrides: %w", err)
	}

	entries := make([]Entry, 0, len(values))
	for _, e := range base.Entries() {
		if o, ok := overrides.Entry(e.Key); ok {
			e.Line = o.Line
		}
		e.Value = values[e.Key]
		entries = append(entries, e)
	}
	for _, o := range overrides.Entries() {
		if _, ok := base.Entry(o.Key); ok {
			continue
		}
		o.Value = values[o.Key]
		entries = append(entries, o)
	}

	return NewSet(entries...), nil
}

// FromEnviron builds a Set from a list in [os.Environ] format. Keys are
// sorted so the result does not depend on the platform's environment order.
func FromEnviron(environ []string) *Set {
	m := env.ToMap(environ)
	return FromMap(m, sortedKeys(m))
}

// FromEnvironFiltered is like [FromEnviron] but keeps only the listed keys,
// in the order given.
func FromEnvironFiltered(environ []string, keys []string) *Set {
	return FromMap(env.ToMap(environ), keys)
}
