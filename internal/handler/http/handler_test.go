package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/envresolve/internal/bootstrap"
	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/MKhiriev/envresolve/internal/metrics"
	"github.com/MKhiriev/envresolve/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inspectedEnv = `POSTGRES_USER=app
POSTGRES_PASSWORD=pg_s3cret
POSTGRES_DB=appdb
DJANGO_DATABASE_URL=postgres://app:pg_s3cret@db/appdb
DJANGO_BASE_URL=http://localhost:8000
DJANGO_SECRET_KEY=dj_s3cret
FLOWER_BASIC_AUTH=flower:fl_s3cret
REDMON_BASIC_AUTH=redmon:rm_s3cret
`

var secrets = []string{"pg_s3cret", "dj_s3cret", "fl_s3cret", "rm_s3cret"}

var testCredentials = config.BasicAuth{Username: "flower", Password: "fl_s3cret"}

func newInspection(t *testing.T, src string) Inspection {
	t.Helper()
	set, err := config.Load(strings.NewReader(src))
	require.NoError(t, err)

	bundle, err := bootstrap.Resolve(set)
	return Inspection{EnvFile: ".env", Set: set, Bundle: bundle, Err: err}
}

func newTestRouter(t *testing.T, in Inspection) http.Handler {
	t.Helper()
	h, err := NewHandler(in, testCredentials, models.NewAppBuildInfo("v0.3.0", "", ""), metrics.New(), logger.Nop())
	require.NoError(t, err)
	return h.Init()
}

func do(t *testing.T, router http.Handler, path string, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth {
		req.SetBasicAuth(testCredentials.Username, testCredentials.Password)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func assertNoSecrets(t *testing.T, body string) {
	t.Helper()
	for _, s := range secrets {
		assert.NotContains(t, body, s)
	}
}

// ---- NewHandler ----

func TestNewHandler_RequiresCredentials(t *testing.T) {
	_, err := NewHandler(Inspection{}, config.BasicAuth{}, models.AppBuildInfo{}, metrics.New(), logger.Nop())
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = NewHandler(Inspection{}, testCredentials, models.AppBuildInfo{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoMetrics)
}

// ---- Unauthenticated routes ----

func TestHealthz(t *testing.T) {
	rr := do(t, newTestRouter(t, newInspection(t, inspectedEnv)), "/healthz", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestVersion(t *testing.T) {
	rr := do(t, newTestRouter(t, newInspection(t, inspectedEnv)), "/version", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v0.3.0","date":"N/A","commit":"N/A"}`, rr.Body.String())
}

func TestMetrics_CountsRequests(t *testing.T) {
	router := newTestRouter(t, newInspection(t, inspectedEnv))

	do(t, router, "/healthz", false)
	do(t, router, "/api/config", false)
	rr := do(t, router, "/metrics", false)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `envresolve_inspector_requests_total{route="/healthz",status="200"} 1`)
	assert.Contains(t, body, `envresolve_inspector_requests_total{route="/api/config",status="401"} 1`)
}

// ---- Auth ----

func TestAPI_RequiresBasicAuth(t *testing.T) {
	router := newTestRouter(t, newInspection(t, inspectedEnv))

	tests := []struct {
		name string
		user string
		pass string
		set  bool
	}{
		{name: "no credentials"},
		{name: "wrong password", user: "flower", pass: "nope", set: true},
		{name: "wrong user", user: "redmon", pass: "fl_s3cret", set: true},
	}

	for _, path := range []string{"/api/config", "/api/services"} {
		for _, tt := range tests {
			t.Run(path+" "+tt.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, path, nil)
				if tt.set {
					req.SetBasicAuth(tt.user, tt.pass)
				}
				rr := httptest.NewRecorder()
				router.ServeHTTP(rr, req)

				assert.Equal(t, http.StatusUnauthorized, rr.Code)
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), realm)
			})
		}
	}
}

// ---- /api/config ----

func TestGetConfig_RedactsSecrets(t *testing.T) {
	rr := do(t, newTestRouter(t, newInspection(t, inspectedEnv)), "/api/config", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assertNoSecrets(t, rr.Body.String())

	var resp configResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Entries, 8)

	first := resp.Entries[0]
	assert.Equal(t, config.KeyPostgresUser, first.Key)
	assert.Equal(t, "app", first.Value)
	assert.False(t, first.Secret)
	assert.Equal(t, sourceFile, first.Source)
	assert.Equal(t, 1, first.Line)

	second := resp.Entries[1]
	assert.Equal(t, config.KeyPostgresPassword, second.Key)
	assert.Equal(t, config.Redacted, second.Value)
	assert.True(t, second.Secret)
}

func TestGetConfig_EnvironmentEntriesHaveNoLine(t *testing.T) {
	in := newInspection(t, inspectedEnv)
	merged, err := config.MergeOverrides(in.Set, config.NewSet(config.Entry{Key: "EXTRA", Value: "1"}))
	require.NoError(t, err)
	in.Set = merged

	rr := do(t, newTestRouter(t, in), "/api/config", true)

	var resp configResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	last := resp.Entries[len(resp.Entries)-1]
	assert.Equal(t, "EXTRA", last.Key)
	assert.Equal(t, sourceEnvironment, last.Source)
	assert.Zero(t, last.Line)
}

// ---- /api/services ----

func TestGetServices(t *testing.T) {
	rr := do(t, newTestRouter(t, newInspection(t, inspectedEnv)), "/api/services", true)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assertNoSecrets(t, body)

	var summary bootstrap.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "app", summary.Database.User)
	assert.Equal(t, bootstrap.DefaultConcurrency, summary.Workers.Concurrency)
	assert.Equal(t, "flower", summary.Monitoring.FlowerUser)
	assert.Equal(t, "http://localhost:8000", summary.Web.BaseURL)
}

func TestGetServices_UnresolvedConfiguration(t *testing.T) {
	src := strings.Replace(inspectedEnv, "REDMON_BASIC_AUTH=redmon:rm_s3cret\n", "REDMON_BASIC_AUTH=rm_s3cret\n", 1)
	src = strings.Replace(src, "POSTGRES_DB=appdb\n", "", 1)
	in := newInspection(t, src)
	require.Error(t, in.Err)

	rr := do(t, newTestRouter(t, in), "/api/services", true)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assertNoSecrets(t, rr.Body.String())

	var resp servicesErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	keys := make([]string, 0, len(resp.Problems))
	for _, p := range resp.Problems {
		keys = append(keys, p.Kind+" "+p.Key)
	}
	assert.Contains(t, keys, "MissingKey POSTGRES_DB")
}

// ---- Middleware ----

func TestWithTraceID_ReusesValidHeader(t *testing.T) {
	router := newTestRouter(t, newInspection(t, inspectedEnv))

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"printable id is reused", "trace-abc-123", true},
		{"id with spaces is replaced", "trace abc", false},
		{"overlong id is replaced", strings.Repeat("a", maxTraceIDLength+1), false},
		{"missing id is generated", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.reused {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf strings.Builder
	h, err := NewHandler(newInspection(t, inspectedEnv), testCredentials, models.AppBuildInfo{}, metrics.New(),
		logger.New(&buf, "inspect", logger.Options{Level: "debug"}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	req.SetBasicAuth(testCredentials.Username, testCredentials.Password)
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"route":"/api/config"`)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"trace_id":`)
	assertNoSecrets(t, out)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Equal(t, http.StatusOK, w.Status())

	_, _ = io.WriteString(w, "hello")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 5, w.size)
}
