// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"
)

// Entry is a single KEY=VALUE declaration.
type Entry struct {
	// Key is the variable name, unique within a [Set].
	Key string

	// Value is everything after the first '=' of the declaring line.
	Value string

	// Line is the 1-based line of the declaration in the source file.
	// It is zero for entries that came from the process environment or
	// were constructed in code.
	Line int
}

// Set is an ordered, immutable mapping from key to [Entry].
//
// A Set is built once during bootstrap (by [Load], [FromEnviron] or
// [MergeOverrides]) and is only read afterwards, so a *Set may be shared
// between goroutines without locking. The zero value is an empty set.
type Set struct {
	order   []string
	entries map[string]Entry
}

// NewSet builds a Set from entries in the given order. A repeated key
// overwrites the earlier value but keeps the key's first position.
func NewSet(entries ...Entry) *Set {
	s := &Set{
		order:   make([]string, 0, len(entries)),
		entries: make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		s.put(e)
	}

	return s
}

// FromMap builds a Set from m. Keys are taken in the order given by keys;
// keys absent from m are skipped.
func FromMap(m map[string]string, keys []string) *Set {
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			entries = append(entries, Entry{Key: k, Value: v})
		}
	}

	return NewSet(entries...)
}

func (s *Set) put(e Entry) {
	if _, ok := s.entries[e.Key]; !ok {
		s.order = append(s.order, e.Key)
	}
	s.entries[e.Key] = e
}

// Len returns the number of distinct keys.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Keys returns the keys in declaration order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.order))
	copy(keys, s.order)

	return keys
}

// Lookup returns the value stored under key and whether it exists.
// Its signature matches the lookup callbacks used by the compose package.
func (s *Set) Lookup(key string) (string, bool) {
	e, ok := s.Entry(key)
	return e.Value, ok
}

// Entry returns the full entry for key.
func (s *Set) Entry(key string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	e, ok := s.entries[key]
	return e, ok
}

// Entries returns a copy of all entries in declaration order.
func (s *Set) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.entries[k])
	}

	return out
}

// Map returns a copy of the key/value pairs.
func (s *Set) Map() map[string]string {
	m := make(map[string]string, s.Len())
	for _, e := range s.Entries() {
		m[e.Key] = e.Value
	}

	return m
}

// MarshalZerologObject writes the set as a zerolog object with secret values
// redacted, so a Set can be logged with Object("config", set) safely.
func (s *Set) MarshalZerologObject(e *zerolog.Event) {
	for _, entry := range s.Entries() {
		e.Str(entry.Key, DisplayValue(entry.Key, entry.Value))
	}
}
