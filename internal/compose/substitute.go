// Package compose substitutes variables into a compose manifest.
//
// Supported forms are $VAR, ${VAR}, ${VAR:-default}, ${VAR-default},
// ${VAR:?message}, ${VAR?message}, ${VAR:+alternative}, ${VAR+alternative}
// and $$ for a literal dollar sign. Defaults and alternatives are themselves
// substituted. Nothing else of the compose syntax is interpreted.
package compose

import (
	"fmt"
	"slices"
	"strings"
)

// LookupFunc returns the value of a variable and whether it is set.
// (*config.Set).Lookup satisfies it.
type LookupFunc func(name string) (string, bool)

// Options tunes [Substitute].
type Options struct {
	// Strict turns a reference to an unset variable without a default into
	// an error instead of an empty string.
	Strict bool
}

// Result is a substituted manifest.
type Result struct {
	// Text is the manifest with every reference replaced.
	Text string

	// Used lists the variables referenced, in first-use order.
	Used []string

	// Missing lists unset variables that were replaced by an empty string.
	Missing []string
}

type substituter struct {
	lookup LookupFunc
	opts   Options
	res    *Result
}

// Substitute replaces every variable reference in text using lookup.
func Substitute(text string, lookup LookupFunc, opts Options) (*Result, error) {
	s := &substituter{lookup: lookup, opts: opts, res: &Result{}}

	out, err := s.expand(text, 0)
	if err != nil {
		return nil, err
	}
	s.res.Text = out

	if opts.Strict && len(s.res.Missing) > 0 {
		return nil, &MissingError{Names: s.res.Missing}
	}

	return s.res, nil
}

// expand substitutes text; base is text's offset in the original manifest
// and is only used for error positions.
func (s *substituter) expand(text string, base int) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]
		if c != '$' || i+1 >= len(text) {
			b.WriteByte(c)
			i++
			continue
		}

		next := text[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end, err := closingBrace(text, i+2)
			if err != nil {
				return "", &SyntaxError{Offset: base + i, Reason: err.Error()}
			}
			value, err := s.braced(text[i+2:end], base+i+2)
			if err != nil {
				return "", err
			}
			b.WriteString(value)
			i = end + 1
		case isNameStart(next):
			j := i + 1
			for j < len(text) && isNameChar(text[j]) {
				j++
			}
			b.WriteString(s.plain(text[i+1 : j]))
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String(), nil
}

func (s *substituter) braced(expr string, offset int) (string, error) {
	n := 0
	for n < len(expr) && isNameChar(expr[n]) {
		n++
	}
	name := expr[:n]
	if name == "" || !isNameStart(name[0]) {
		return "", &SyntaxError{Offset: offset, Reason: "invalid variable name"}
	}

	rest := expr[n:]
	if rest == "" {
		return s.plain(name), nil
	}

	op, arg := rest[:1], rest[1:]
	if op == ":" {
		if len(rest) < 2 {
			return "", &SyntaxError{Offset: offset + n, Reason: "missing modifier after ':'"}
		}
		op, arg = rest[:2], rest[2:]
	}
	argOffset := offset + n + len(op)

	value, set := s.use(name)
	nonEmpty := set && value != ""

	switch op {
	case ":-", "-":
		if nonEmpty || (op == "-" && set) {
			return value, nil
		}
		return s.expand(arg, argOffset)
	case ":?", "?":
		if nonEmpty || (op == "?" && set) {
			return value, nil
		}
		msg, err := s.expand(arg, argOffset)
		if err != nil {
			return "", err
		}
		return "", &RequiredError{Name: name, Message: msg}
	case ":+", "+":
		if nonEmpty || (op == "+" && set) {
			return s.expand(arg, argOffset)
		}
		return "", nil
	default:
		return "", &SyntaxError{Offset: offset + n, Reason: fmt.Sprintf("unknown modifier %q", op)}
	}
}

func (s *substituter) plain(name string) string {
	value, set := s.use(name)
	if !set && !slices.Contains(s.res.Missing, name) {
		s.res.Missing = append(s.res.Missing, name)
	}

	return value
}

func (s *substituter) use(name string) (string, bool) {
	if !slices.Contains(s.res.Used, name) {
		s.res.Used = append(s.res.Used, name)
	}

	return s.lookup(name)
}

// closingBrace returns the index of the '}' closing a "${" whose body starts
// at start, honouring nested references in defaults.
func closingBrace(text string, start int) (int, error) {
	depth := 1
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '$':
			i++
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, fmt.Errorf("unterminated '${'")
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
