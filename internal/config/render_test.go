package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender_DotenvRoundTrip(t *testing.T) {
	sources := []string{
		deploymentEnv,
		"A=\nB= spaced \nC=a=b=c\nD=#not-a-comment\n",
	}

	for _, src := range sources {
		first := mustLoad(t, src)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, first, FormatDotenv, RenderOptions{}))

		second := mustLoad(t, buf.String())
		assert.Equal(t, first.Keys(), second.Keys())
		assert.Equal(t, first.Map(), second.Map())

		var again bytes.Buffer
		require.NoError(t, Render(&again, second, FormatDotenv, RenderOptions{}))
		assert.Equal(t, buf.String(), again.String())
	}
}

func TestRender_DotenvRejectsUnrepresentable(t *testing.T) {
	tests := []Entry{
		{Key: "MULTI", Value: "line1\nline2"},
		{Key: "#HASH", Value: "x"},
		{Key: " PADDED", Value: "x"},
		{Key: "A=B", Value: "x"},
	}

	for _, e := range tests {
		err := Render(&bytes.Buffer{}, NewSet(e), FormatDotenv, RenderOptions{})
		assert.ErrorIs(t, err, ErrNotRepresentable, e.Key)
	}
}

func TestRender_Redacted(t *testing.T) {
	s := mustLoad(t, deploymentEnv)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, FormatDotenv, RenderOptions{Redact: true}))

	out := buf.String()
	assert.Contains(t, out, "POSTGRES_USER=postgres\n")
	assert.Contains(t, out, "POSTGRES_PASSWORD=[REDACTED]\n")
	assert.Contains(t, out, "DJANGO_SECRET_KEY=[REDACTED]\n")
	assert.Contains(t, out, "FLOWER_BASIC_AUTH=[REDACTED]\n")
	assert.Contains(t, out, "DJANGO_BASE_URL=http://localhost:8000\n")
	assert.NotContains(t, out, "a_pass")
	assert.NotContains(t, out, "s3cr3t")
}

func TestRender_JSON(t *testing.T) {
	s := NewSet(Entry{Key: "B", Value: "2"}, Entry{Key: "A", Value: `quote"d`})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, FormatJSON, RenderOptions{}))

	assert.Equal(t, "{\n  \"B\": \"2\",\n  \"A\": \"quote\\\"d\"\n}\n", buf.String())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, s.Map(), decoded)
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewSet(), FormatJSON, RenderOptions{}))
	assert.Equal(t, "{}\n", buf.String())
}

func TestRender_YAML(t *testing.T) {
	s := mustLoad(t, deploymentEnv)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, FormatYAML, RenderOptions{}))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, s.Map(), decoded)
	assert.Equal(t, "10", decoded["CELERY_CONCURRENCY"])
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":       FormatDotenv,
		"env":    FormatDotenv,
		"dotenv": FormatDotenv,
		"JSON":   FormatJSON,
		"yml":    FormatYAML,
		"yaml":   FormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}
