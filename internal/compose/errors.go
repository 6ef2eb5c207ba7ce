package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidManifest is returned by [ValidateYAML] when substitution left a
// manifest that is no longer valid YAML.
var ErrInvalidManifest = errors.New("manifest is not valid yaml")

// SyntaxError reports a malformed reference.
type SyntaxError struct {
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid interpolation at offset %d: %s", e.Offset, e.Reason)
}

// RequiredError is returned for ${VAR:?message} and ${VAR?message} when the
// variable is unset (or empty, for the ':' form).
type RequiredError struct {
	Name    string
	Message string
}

func (e *RequiredError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("required variable %s is missing a value", e.Name)
	}
	return fmt.Sprintf("required variable %s is missing a value: %s", e.Name, e.Message)
}

// MissingError is returned in strict mode for references to unset variables.
type MissingError struct {
	Names []string
}

func (e *MissingError) Error() string {
	return "unset variables: " + strings.Join(e.Names, ", ")
}
