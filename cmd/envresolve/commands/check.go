package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewCheckCommand(a *App) *cobra.Command {
	var summary bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the env file and resolve every service view",
		Long: `Load the env file, apply environment overrides, validate every recognized
key and resolve the database, web, workers and monitoring views.

Exits non-zero with one diagnostic per problem, naming the key and the kind of
error. Warnings (credentials that disagree between services, unknown keys) are
printed but do not fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, bundle, err := a.resolve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if summary {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(bundle.Summary())
			}

			for _, w := range bundle.Warnings() {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			fmt.Fprintf(out, "ok: %d keys, %d warnings\n", set.Len(), len(bundle.Warnings()))

			return nil
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print the redacted service views as JSON")

	return cmd
}
