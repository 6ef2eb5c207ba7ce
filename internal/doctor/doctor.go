// Package doctor checks a resolved configuration against the running
// services: that the database accepts the web process credentials and that
// the web process answers on its base URL.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/envresolve/internal/bootstrap"
	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/MKhiriev/envresolve/internal/store"
)

// Check names.
const (
	CheckDatabase = "database"
	CheckWeb      = "web"
)

// Check is the outcome of one probe. Detail never carries a secret value.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// Doctor runs probes with a per-probe timeout. A nil prober is reported as a
// skipped, passing check.
type Doctor struct {
	db      DatabaseProber
	catalog DatabaseCatalog
	web     WebProber
	timeout time.Duration

	logger *logger.Logger
}

// New constructs a Doctor.
func New(db DatabaseProber, web WebProber, timeout time.Duration, log *logger.Logger) *Doctor {
	return &Doctor{db: db, web: web, timeout: timeout, logger: log}
}

// WithCatalog lets the database check tell a missing POSTGRES_DB apart from
// a connection that names another database.
func (d *Doctor) WithCatalog(c DatabaseCatalog) *Doctor {
	d.catalog = c
	return d
}

// Run probes every service in turn and returns one Check per service.
func (d *Doctor) Run(ctx context.Context, b *bootstrap.Bundle) []Check {
	checks := []Check{
		d.checkDatabase(ctx, b.Database),
		d.checkWeb(ctx),
	}

	for _, c := range checks {
		event := d.logger.Info()
		if !c.OK {
			event = d.logger.Error()
		}
		event.Str("check", c.Name).Bool("ok", c.OK).Str("detail", c.Detail).Msg("doctor check")
	}

	return checks
}

// Healthy reports whether every check passed.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}

func (d *Doctor) checkDatabase(ctx context.Context, want bootstrap.Database) Check {
	c := Check{Name: CheckDatabase}
	if d.db == nil {
		c.OK, c.Detail = true, "skipped"
		return c
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.db.Ping(ctx); err != nil {
		c.Detail = err.Error()
		if errors.Is(err, store.ErrUnknownDatabase) {
			c.Detail += d.describeDatabase(ctx, want.Name)
		}
		return c
	}

	session, err := d.db.Identify(ctx)
	if err != nil {
		c.Detail = err.Error()
		return c
	}

	switch {
	case session.User != want.User:
		c.Detail = fmt.Sprintf("connected as %q but %s is %q", session.User, config.KeyPostgresUser, want.User)
	case session.Database != want.Name:
		c.Detail = fmt.Sprintf("connected to %q but %s is %q", session.Database, config.KeyPostgresDB, want.Name) +
			d.describeDatabase(ctx, want.Name)
	default:
		c.OK = true
		c.Detail = fmt.Sprintf("connected as %q to %q", session.User, session.Database)
		if session.Version != "" {
			c.Detail += " (server " + session.Version + ")"
		}
	}

	return c
}

// describeDatabase says whether POSTGRES_DB exists, as a detail suffix. It is
// empty without a catalog or when the lookup fails.
func (d *Doctor) describeDatabase(ctx context.Context, name string) string {
	if d.catalog == nil {
		return ""
	}

	exists, err := d.catalog.DatabaseExists(ctx, name)
	if err != nil {
		d.logger.Debug().Err(err).Msg("database lookup failed")
		return ""
	}
	if !exists {
		return fmt.Sprintf("; %s %q does not exist on the server", config.KeyPostgresDB, name)
	}

	return fmt.Sprintf("; %s %q exists", config.KeyPostgresDB, name)
}

func (d *Doctor) checkWeb(ctx context.Context) Check {
	c := Check{Name: CheckWeb}
	if d.web == nil {
		c.OK, c.Detail = true, "skipped"
		return c
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	status, err := d.web.Probe(ctx)
	if err != nil {
		c.Detail = err.Error()
		return c
	}

	c.OK = true
	c.Detail = fmt.Sprintf("http %d in %s", status.Code, status.Latency.Round(time.Millisecond))

	return c
}

func (d *Doctor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}
