package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/envresolve/internal/compose"
	"github.com/spf13/cobra"
)

func NewSubstituteCommand(a *App) *cobra.Command {
	var (
		outputPath   string
		strict       bool
		validateYAML bool
	)

	cmd := &cobra.Command{
		Use:   "substitute <manifest>",
		Short: "Substitute the configuration into a compose manifest",
		Long: `Replace $VAR and ${VAR} references in a compose manifest with values from
the merged configuration. The ${VAR:-default}, ${VAR-default}, ${VAR:?msg},
${VAR?msg}, ${VAR:+alt} and ${VAR+alt} forms are supported and $$ is a literal
dollar sign.

Unset variables become empty strings with a warning, or fail with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading manifest: %w", err)
			}

			set, err := a.load()
			if err != nil {
				return err
			}

			res, err := compose.Substitute(string(manifest), set.Lookup, compose.Options{Strict: strict})
			if err != nil {
				return err
			}
			for _, name := range res.Missing {
				a.logger.Warn().Str("variable", name).Msg("variable is not set, substituting an empty string")
			}
			a.logger.Debug().Strs("used", res.Used).Msg("manifest substituted")

			if validateYAML {
				if err = compose.ValidateYAML(res.Text); err != nil {
					return err
				}
			}

			return writeOutput(cmd, outputPath, func(w io.Writer) error {
				_, err := io.WriteString(w, res.Text)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on references to unset variables")
	cmd.Flags().BoolVar(&validateYAML, "validate-yaml", false, "Check the result is still valid YAML")

	return cmd
}
