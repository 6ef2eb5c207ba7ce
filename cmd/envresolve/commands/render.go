package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/spf13/cobra"
)

func NewRenderCommand(a *App) *cobra.Command {
	var (
		format     string
		outputPath string
		redact     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the resolved configuration as dotenv, JSON or YAML",
		Long: `Validate the configuration, then write the merged set in the chosen format.

Supported formats:
  dotenv - KEY=VALUE lines (default)
  json   - JSON object in source order
  yaml   - YAML mapping in source order

Written files are created with 0600 permissions.

Examples:
  envresolve render --format json
  envresolve render --format yaml --out config.yaml
  envresolve render --redact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			set, _, err := a.resolve()
			if err != nil {
				return err
			}

			return writeOutput(cmd, outputPath, func(w io.Writer) error {
				return config.Render(w, set, f, config.RenderOptions{Redact: redact})
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "dotenv", "Output format: dotenv, json, yaml")
	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&redact, "redact", false, "Redact secret values")

	return cmd
}

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
