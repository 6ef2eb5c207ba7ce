package http

import (
	"net/http"

	"github.com/MKhiriev/envresolve/internal/config"
)

type problemResponse struct {
	Kind string `json:"kind"`
	Key  string `json:"key,omitempty"`
	Line int    `json:"line,omitempty"`
}

type servicesErrorResponse struct {
	Error    string            `json:"error"`
	Problems []problemResponse `json:"problems"`
}

// getServices returns the redacted per-consumer views, or 503 with the
// failing keys when resolution failed.
func (h *Handler) getServices(w http.ResponseWriter, r *http.Request) {
	if h.inspection.Bundle != nil {
		writeJSON(w, r, http.StatusOK, h.inspection.Bundle.Summary())
		return
	}

	resp := servicesErrorResponse{Error: "configuration did not resolve", Problems: []problemResponse{}}
	for _, e := range config.Errors(h.inspection.Err) {
		resp.Problems = append(resp.Problems, problemResponse{Kind: e.Kind.String(), Key: e.Key, Line: e.Line})
	}

	writeJSON(w, r, http.StatusServiceUnavailable, resp)
}
