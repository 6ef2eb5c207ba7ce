package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deploymentEnv = `POSTGRES_USER=postgres
POSTGRES_PASSWORD=postgres
POSTGRES_DB=ac_mediator

# Django
DJANGO_DATABASE_URL=postgres://postgres:postgres@db/ac_mediator
DJANGO_BASE_URL=http://localhost:8000
DJANGO_SECRET_KEY=s3cr3t=with=equals

# Celery
CELERY_CONCURRENCY=10

# Monitoring
FLOWER_BASIC_AUTH=a_user:a_pass
REDMON_BASIC_AUTH=b_user:b_pass
`

func mustLoad(t *testing.T, src string) *Set {
	t.Helper()
	s, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	return s
}

func TestLoad_DeploymentFile(t *testing.T) {
	// Act
	s := mustLoad(t, deploymentEnv)

	// Assert
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, []string{
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"DJANGO_DATABASE_URL", "DJANGO_BASE_URL", "DJANGO_SECRET_KEY",
		"CELERY_CONCURRENCY", "FLOWER_BASIC_AUTH", "REDMON_BASIC_AUTH",
	}, s.Keys())

	v, err := s.Require("DJANGO_SECRET_KEY")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t=with=equals", v)

	e, ok := s.Entry("DJANGO_DATABASE_URL")
	require.True(t, ok)
	assert.Equal(t, 6, e.Line)
}

func TestLoad_RequireReturnsExactValue(t *testing.T) {
	lines := map[string]string{
		"PLAIN":          "value",
		"EMPTY":          "",
		"SPACES":         "  padded value  ",
		"HASH_IN_VALUE":  "abc#def",
		"QUOTED":         `"not unquoted"`,
		"TRAILING_EQUAL": "x=",
	}

	var b strings.Builder
	for k, v := range lines {
		b.WriteString(k + "=" + v + "\n")
	}

	s := mustLoad(t, b.String())
	for k, want := range lines {
		got, err := s.Require(k)
		require.NoError(t, err, k)
		assert.Equal(t, want, got, k)
	}
}

func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	s := mustLoad(t, "# comment\n\n   \n  # indented comment\nKEY=value\n")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"KEY"}, s.Keys())
}

func TestLoad_OnlyComments(t *testing.T) {
	s := mustLoad(t, "# comment\n")
	assert.Zero(t, s.Len())
}

func TestLoad_TrimsKeyAndCarriageReturn(t *testing.T) {
	s := mustLoad(t, " KEY = value\r\nOTHER=x\r\n")

	v, err := s.Require("KEY")
	require.NoError(t, err)
	assert.Equal(t, " value", v)

	v, err = s.Require("OTHER")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestLoad_DuplicateKeyLaterWins(t *testing.T) {
	s := mustLoad(t, "A=1\nB=2\nA=3\n")

	assert.Equal(t, []string{"A", "B"}, s.Keys())
	v, _ := s.Lookup("A")
	assert.Equal(t, "3", v)
	e, _ := s.Entry("A")
	assert.Equal(t, 3, e.Line)
}

func TestLoad_MalformedEntry(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{name: "no separator", src: "GOOD=1\nsupersecretvalue\n", line: 2},
		{name: "empty key", src: "=value\n", line: 1},
		{name: "blank key", src: "# c\n   =value\n", line: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Load(strings.NewReader(tt.src))

			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrMalformedEntry)

			var cfgErr *Error
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, MalformedEntry, cfgErr.Kind)
			assert.Equal(t, tt.line, cfgErr.Line)
			assert.NotContains(t, err.Error(), "supersecretvalue")
		})
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(deploymentEnv), 0o600))

	s, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, 9, s.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile_MalformedNamesPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(p, []byte("oops\n"), 0o600))

	_, err := LoadFile(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEntry)
	assert.Contains(t, err.Error(), p)
}
