package config

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotRepresentable is returned by [Render] in dotenv format for an entry
// that [Load] could not read back identically.
var ErrNotRepresentable = errors.New("entry cannot be represented in dotenv format")

// Format is an output format for [Render].
type Format string

const (
	FormatDotenv Format = "dotenv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatDotenv, FormatJSON, FormatYAML:
		return f, nil
	case "env", "":
		return FormatDotenv, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// RenderOptions tunes [Render].
type RenderOptions struct {
	// Redact replaces values with their [DisplayValue].
	Redact bool
}

// Render writes set to w in the given format, in declaration order.
// Unredacted dotenv output round-trips through [Load].
func Render(w io.Writer, set *Set, format Format, opts RenderOptions) error {
	value := func(e Entry) string {
		if opts.Redact {
			return DisplayValue(e.Key, e.Value)
		}
		return e.Value
	}

	switch format {
	case FormatDotenv:
		return renderDotenv(w, set, value)
	case FormatJSON:
		return renderJSON(w, set, value)
	case FormatYAML:
		return renderYAML(w, set, value)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderDotenv(w io.Writer, set *Set, value func(Entry) string) error {
	bw := bufio.NewWriter(w)
	for _, e := range set.Entries() {
		v := value(e)
		if err := checkDotenv(e.Key, v); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s=%s\n", e.Key, v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func checkDotenv(key, value string) error {
	switch {
	case key == "" || key != strings.TrimSpace(key):
		return fmt.Errorf("%w: key %q has surrounding spaces or is empty", ErrNotRepresentable, key)
	case strings.Contains(key, "="):
		return fmt.Errorf("%w: key %q contains '='", ErrNotRepresentable, key)
	case strings.HasPrefix(key, commentMarker):
		return fmt.Errorf("%w: key %q starts with a comment marker", ErrNotRepresentable, key)
	case strings.ContainsAny(value, "\n\r"):
		return fmt.Errorf("%w: value of %s spans lines", ErrNotRepresentable, key)
	}

	return nil
}

func renderJSON(w io.Writer, set *Set, value func(Entry) string) error {
	var b strings.Builder
	b.WriteString("{")
	for i, e := range set.Entries() {
		k, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value(e))
		if err != nil {
			return err
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n  ")
		b.Write(k)
		b.WriteString(": ")
		b.Write(v)
	}
	if set.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderYAML(w io.Writer, set *Set, value func(Entry) string) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range set.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value(e)},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("error encoding yaml: %w", err)
	}

	return enc.Close()
}
