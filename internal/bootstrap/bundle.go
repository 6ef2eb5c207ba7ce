package bootstrap

import (
	"github.com/MKhiriev/envresolve/internal/config"
)

// DefaultConcurrency is used when CELERY_CONCURRENCY is absent.
const DefaultConcurrency = 1

// Bundle is the resolved configuration of every dependent subsystem.
// It is built once and only read afterwards.
type Bundle struct {
	Database   Database
	Web        Web
	Workers    Workers
	Monitoring Monitoring

	warnings []string
}

// Database is what the database service is started with.
type Database struct {
	User     string
	Password string
	Name     string
}

// Web is what the web process is started with.
type Web struct {
	DatabaseURL *config.URL
	BaseURL     *config.URL
	SecretKey   string
}

// Workers is what the task-queue workers are started with.
type Workers struct {
	Concurrency int
}

// Monitoring holds the credentials gating the monitoring dashboards.
type Monitoring struct {
	Flower config.BasicAuth
	Redmon config.BasicAuth
}

// Warnings returns non-fatal findings: credentials that disagree between the
// database service and the web process, and keys the schema does not know.
// Warnings never contain secret values.
func (b *Bundle) Warnings() []string {
	out := make([]string, len(b.warnings))
	copy(out, b.warnings)

	return out
}

// Summary is a display-safe view of a Bundle.
type Summary struct {
	Database struct {
		User string `json:"user"`
		Name string `json:"name"`
	} `json:"database"`
	Web struct {
		DatabaseURL string `json:"database_url"`
		BaseURL     string `json:"base_url"`
	} `json:"web"`
	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers"`
	Monitoring struct {
		FlowerUser string `json:"flower_user"`
		RedmonUser string `json:"redmon_user"`
	} `json:"monitoring"`
	Warnings []string `json:"warnings"`
}

// Summary returns the bundle with every secret left out or redacted.
func (b *Bundle) Summary() Summary {
	var s Summary
	s.Database.User = b.Database.User
	s.Database.Name = b.Database.Name
	if b.Web.DatabaseURL != nil {
		s.Web.DatabaseURL = b.Web.DatabaseURL.Redacted()
	}
	if b.Web.BaseURL != nil {
		s.Web.BaseURL = b.Web.BaseURL.Redacted()
	}
	s.Workers.Concurrency = b.Workers.Concurrency
	s.Monitoring.FlowerUser = b.Monitoring.Flower.Username
	s.Monitoring.RedmonUser = b.Monitoring.Redmon.Username
	s.Warnings = b.Warnings()

	return s
}
