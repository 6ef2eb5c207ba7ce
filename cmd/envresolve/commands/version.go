package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func NewVersionCommand(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version needs neither settings nor an env file
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(a.BuildInfo)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.BuildInfo.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")

	return cmd
}
