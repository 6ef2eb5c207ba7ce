package http

import (
	"net/http"

	"github.com/MKhiriev/envresolve/internal/config"
)

// Entry sources reported by /api/config.
const (
	sourceFile        = "file"
	sourceEnvironment = "environment"
)

type entryResponse struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Secret bool   `json:"secret"`
	Source string `json:"source"`
	Line   int    `json:"line,omitempty"`
}

type configResponse struct {
	EnvFile string          `json:"env_file"`
	Entries []entryResponse `json:"entries"`
}

// getConfig lists every resolved entry in source order with secrets
// redacted.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	resp := configResponse{
		EnvFile: h.inspection.EnvFile,
		Entries: make([]entryResponse, 0, h.inspection.Set.Len()),
	}

	for _, e := range h.inspection.Set.Entries() {
		entry := entryResponse{
			Key:    e.Key,
			Value:  config.DisplayValue(e.Key, e.Value),
			Secret: config.IsSecret(e.Key),
			Source: sourceEnvironment,
		}
		if e.Line > 0 {
			entry.Source = sourceFile
			entry.Line = e.Line
		}
		resp.Entries = append(resp.Entries, entry)
	}

	writeJSON(w, r, http.StatusOK, resp)
}
