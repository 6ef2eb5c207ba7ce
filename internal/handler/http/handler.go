package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/envresolve/internal/bootstrap"
	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/MKhiriev/envresolve/internal/metrics"
	"github.com/MKhiriev/envresolve/models"
)

// Inspection is the state the inspector serves. It is built once before the
// server starts and only read afterwards.
type Inspection struct {
	// EnvFile is the path the set was loaded from.
	EnvFile string

	// Set is the merged configuration.
	Set *config.Set

	// Bundle is nil when resolution failed.
	Bundle *bootstrap.Bundle

	// Err is the resolution error, if any.
	Err error
}

type Handler struct {
	inspection  Inspection
	credentials config.BasicAuth
	buildInfo   models.AppBuildInfo

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHandler constructs the inspector handler. credentials gate /api.
func NewHandler(
	inspection Inspection,
	credentials config.BasicAuth,
	buildInfo models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Handler, error) {
	if credentials.Username == "" {
		return nil, ErrNoCredentials
	}
	if m == nil {
		return nil, ErrNoMetrics
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		inspection:  inspection,
		credentials: credentials,
		buildInfo:   buildInfo,
		metrics:     m,
		logger:      logger,
	}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
