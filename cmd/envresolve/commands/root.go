package commands

import (
	"github.com/MKhiriev/envresolve/internal/settings"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "envresolve",
		Short: "Resolve and validate a deployment env file",
		Long: `envresolve reads the KEY=VALUE env file shared by the services of a
compose deployment, applies process environment overrides, validates every
recognized key and hands each service the typed view it needs.

Secret values are redacted in every output unless explicitly revealed.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	a.flags = settings.BindFlags(root.PersistentFlags())

	root.AddCommand(
		NewCheckCommand(a),
		NewPrintCommand(a),
		NewRenderCommand(a),
		NewSubstituteCommand(a),
		NewDoctorCommand(a),
		NewInspectCommand(a),
		NewVersionCommand(a),
	)

	return root
}
