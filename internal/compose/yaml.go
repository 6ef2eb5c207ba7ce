package compose

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValidateYAML checks that text still decodes as a YAML document after
// substitution. The decode error is wrapped but the document is not echoed.
func ValidateYAML(text string) error {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	return nil
}
