package commands

import (
	"fmt"

	"github.com/MKhiriev/envresolve/internal/bootstrap"
	handler "github.com/MKhiriev/envresolve/internal/handler/http"
	"github.com/MKhiriev/envresolve/internal/metrics"
	"github.com/MKhiriev/envresolve/internal/server"
	"github.com/MKhiriev/envresolve/internal/settings"
	"github.com/spf13/cobra"
)

func NewInspectCommand(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve the redacted configuration over HTTP",
		Long: `Start a read-only HTTP inspector:

  GET /healthz        liveness
  GET /version        build info
  GET /metrics        Prometheus metrics
  GET /api/config     merged entries with secrets redacted
  GET /api/services   resolved service views with secrets redacted

/api is protected with HTTP basic auth using the credential stored in the key
named by --auth-key (FLOWER_BASIC_AUTH by default). The inspector also starts
when the configuration does not resolve, so /api/services can report why.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.load()
			if err != nil {
				return err
			}

			m := metrics.New()
			bundle, resolveErr := bootstrap.Resolve(set)
			warnings := 0
			if bundle != nil {
				warnings = len(bundle.Warnings())
			}
			m.RecordResolution(resolveErr, warnings)
			if resolveErr != nil {
				a.logger.Warn().Msg("configuration does not resolve, serving diagnostics")
			}

			creds, err := set.RequireBasicAuth(a.settings.Inspector.AuthKey)
			if err != nil {
				return fmt.Errorf("inspector credentials: %w", err)
			}

			h, err := handler.NewHandler(handler.Inspection{
				EnvFile: a.settings.Source.EnvFile,
				Set:     set,
				Bundle:  bundle,
				Err:     resolveErr,
			}, creds, a.BuildInfo, m, a.logger)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(h.Init(), a.settings.Inspector, a.logger)
			if err != nil {
				return err
			}

			return srv.Run(cmd.Context())
		},
	}

	settings.BindInspectorFlags(cmd.Flags(), a.flags)

	return cmd
}
