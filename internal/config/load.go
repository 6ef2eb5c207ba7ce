package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const commentMarker = "#"

// Load reads KEY=VALUE declarations from r.
//
// Blank lines and lines starting with '#' (after leading spaces) are skipped.
// Each remaining line is split on the first '='; the key is trimmed, the value
// is kept verbatim apart from a trailing carriage return. No quoting, escaping
// or multi-line values are recognised.
//
// A line without '=' or with an empty key yields an [*Error] of kind
// [MalformedEntry] carrying the line number only.
func Load(r io.Reader) (*Set, error) {
	s := NewSet()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSuffix(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, commentMarker) {
			continue
		}

		key, value, found := strings.Cut(raw, "=")
		if !found {
			return nil, &Error{Kind: MalformedEntry, Line: line, Reason: "missing '='"}
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &Error{Kind: MalformedEntry, Line: line, Reason: "empty key"}
		}

		s.put(Entry{Key: key, Value: value, Line: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading env source: %w", err)
	}

	return s, nil
}

// LoadFile opens path and passes it to [Load].
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening env file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}
