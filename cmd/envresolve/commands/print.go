package commands

import (
	"fmt"

	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/spf13/cobra"
)

func NewPrintCommand(a *App) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "print",
		Short: "List the merged configuration",
		Long: `Print every key of the merged configuration as KEY=VALUE in source order.

Secret values are replaced with [REDACTED] unless --reveal is given. The
configuration is not validated, so print also works on a broken env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.load()
			if err != nil {
				return err
			}
			if reveal {
				a.logger.Warn().Msg("printing secret values")
			}

			out := cmd.OutOrStdout()
			for _, e := range set.Entries() {
				value := config.DisplayValue(e.Key, e.Value)
				if reveal {
					value = e.Value
				}
				fmt.Fprintf(out, "%s=%s\n", e.Key, value)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print secret values in clear text")

	return cmd
}
