package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/envresolve/internal/adapter"
	"github.com/MKhiriev/envresolve/internal/doctor"
	"github.com/MKhiriev/envresolve/internal/metrics"
	"github.com/MKhiriev/envresolve/internal/settings"
	"github.com/MKhiriev/envresolve/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("one or more doctor checks failed")

func NewDoctorCommand(a *App) *cobra.Command {
	var (
		asJSON      bool
		skip        []string
		metricsFile string
	)

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration against the running services",
		Long: `Resolve the configuration, then connect to the database with
DJANGO_DATABASE_URL and request DJANGO_BASE_URL.

The database check fails when the server rejects the credentials or reports a
user or database other than POSTGRES_USER and POSTGRES_DB; when the postgres
maintenance database accepts the same credentials the detail also says whether
POSTGRES_DB exists. The web check sends the base URL userinfo as basic auth and
fails on transport errors and 5xx responses.

Use --skip database or --skip web to leave a probe out. With --metrics-file the
results are also written in the Prometheus text format, for the node exporter
textfile collector.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, bundle, err := a.resolve()
			if err != nil {
				return err
			}
			timeout := a.settings.Probe.Timeout

			var (
				dbProber doctor.DatabaseProber
				catalog  doctor.DatabaseCatalog
			)
			if !contains(skip, doctor.CheckDatabase) {
				connConfig, err := store.ParseDSN(bundle.Web.DatabaseURL)
				if err != nil {
					return err
				}
				db := store.Open(connConfig, a.logger)
				defer db.Close()
				dbProber = db

				if maintenance := a.connectMaintenance(cmd.Context(), connConfig, timeout); maintenance != nil {
					defer maintenance.Close()
					catalog = maintenance
				}
			}

			var webProber doctor.WebProber
			if !contains(skip, doctor.CheckWeb) {
				probe, err := adapter.NewWebProbe(adapter.WebProbeConfig{
					BaseURL:     bundle.Web.BaseURL,
					Credentials: adapter.CredentialsFromURL(bundle.Web.BaseURL),
					Timeout:     timeout,
				}, a.logger)
				if err != nil {
					return err
				}
				webProber = probe
			}

			d := doctor.New(dbProber, webProber, timeout, a.logger)
			if catalog != nil {
				d.WithCatalog(catalog)
			}
			checks := d.Run(cmd.Context(), bundle)

			if metricsFile != "" {
				m := metrics.New()
				m.RecordResolution(nil, len(bundle.Warnings()))
				m.RecordChecks(checks)
				if err = m.WriteTextfile(metricsFile); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err = enc.Encode(checks); err != nil {
					return err
				}
			} else {
				for _, c := range checks {
					status := "ok"
					if !c.OK {
						status = "FAIL"
					}
					fmt.Fprintf(out, "%-4s %-8s %s\n", status, c.Name, c.Detail)
				}
			}

			if !doctor.Healthy(checks) {
				return errUnhealthy
			}
			return nil
		},
	}

	settings.BindProbeFlags(cmd.Flags(), a.flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the checks as JSON")
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Checks to skip: database, web")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Also write the results to this file in the Prometheus text format")

	return cmd
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// connectMaintenance connects to the maintenance database with the web
// process credentials. It returns nil when the server refuses, the database
// check then runs without catalog lookups.
func (a *App) connectMaintenance(ctx context.Context, cfg *pgx.ConnConfig, timeout time.Duration) *store.DB {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, store.MaintenanceConfig(cfg), a.logger)
	if err != nil {
		a.logger.Debug().Err(err).Msg("maintenance database unavailable, skipping catalog lookups")
		return nil
	}

	return db
}
