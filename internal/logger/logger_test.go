package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WritesRoleAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "check", Options{Level: "warn"})

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"role":"check"`)
	assert.Contains(t, out, `"message":"shown"`)
	assert.Contains(t, out, `"func":`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", Options{Level: "loud"})

	l.Debug().Msg("debug")
	l.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestNew_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "render", Options{Format: FormatConsole})

	l.Info().Str("key", "POSTGRES_DB").Msg("rendered")

	out := buf.String()
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "func=")
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "rendered")
	assert.Contains(t, out, "key=POSTGRES_DB")
	assert.Contains(t, out, "role=render")
}

func TestWithEnvFile(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "check", Options{}).WithEnvFile("deploy/.env")

	l.Info().Msg("loaded")

	assert.Contains(t, buf.String(), `"env_file":"deploy/.env"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "inspect", Options{Level: "debug"})

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(r).Info().Msg("from request")

	assert.Contains(t, buf.String(), "from ctx")
	assert.Contains(t, buf.String(), "from request")
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	l := FromContext(context.Background())

	assert.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().GetChildLogger().Error().Msg("discarded")
	})
}
