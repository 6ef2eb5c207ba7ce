package http

import (
	"net/http"

	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// auth requires the inspector credentials as HTTP basic auth. Rejected
// attempts are logged with the offered username only.
func (h *Handler) auth(next http.Handler) http.Handler {
	basic := middleware.BasicAuth(realm, map[string]string{
		h.credentials.Username: h.credentials.Password,
	})(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aw := &responseWriter{ResponseWriter: w}
		basic.ServeHTTP(aw, r)

		if aw.status == http.StatusUnauthorized {
			user, _, offered := r.BasicAuth()
			logger.FromRequest(r).Warn().
				Str("user", user).
				Bool("offered", offered).
				Msg("inspector credentials rejected")
		}
	})
}
