// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter probes the HTTP services configured by the env file.
//
// [WebProbe] issues a single GET against a base URL, optionally with basic
// auth credentials, and reports the status code and latency. Errors are
// mapped to the sentinel values in errors.go so that callers can use
// [errors.Is].
package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/envresolve/internal/config"
	"github.com/MKhiriev/envresolve/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout = 5 * time.Second
	maxRedirects   = 5
)

// WebProbeConfig selects what [WebProbe] requests.
type WebProbeConfig struct {
	// BaseURL is requested as is, unless Credentials are set.
	BaseURL *config.URL

	// Credentials, when set, are sent as basic auth and any userinfo is
	// dropped from the requested URL.
	Credentials *config.BasicAuth

	Timeout time.Duration
}

// Status is the outcome of a successful probe.
type Status struct {
	Code    int           `json:"code"`
	Latency time.Duration `json:"latency"`
}

// WebProbe checks that an HTTP service answers.
type WebProbe struct {
	client *resty.Client
	target string

	logger *logger.Logger
}

// NewWebProbe constructs a [WebProbe] for cfg. Only http and https base URLs
// are accepted.
func NewWebProbe(cfg WebProbeConfig, log *logger.Logger) (*WebProbe, error) {
	if cfg.BaseURL == nil {
		return nil, fmt.Errorf("%w: no url", ErrInvalidBaseURL)
	}
	switch strings.ToLower(cfg.BaseURL.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidBaseURL, cfg.BaseURL.Scheme)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	target := cfg.BaseURL.Raw()
	if cfg.Credentials != nil {
		client.SetBasicAuth(cfg.Credentials.Username, cfg.Credentials.Password)
		u := cfg.BaseURL.URL()
		u.User = nil
		target = u.String()
	}

	return &WebProbe{client: client, target: target, logger: log}, nil
}

// CredentialsFromURL returns the userinfo of u as basic auth credentials, or
// nil when u carries no user.
func CredentialsFromURL(u *config.URL) *config.BasicAuth {
	if u == nil || u.User == "" {
		return nil
	}

	return &config.BasicAuth{Username: u.User, Password: u.Password}
}

// Probe issues a GET request and reports how the service answered.
// Transport errors, rejected credentials and 5xx responses fail.
func (p *WebProbe) Probe(ctx context.Context) (Status, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/json").
		Get(p.target)
	if err != nil {
		p.logger.Debug().Str("error", err.Error()).Msg("probe request failed")
		return Status{}, fmt.Errorf("%w: %s", ErrUnreachable, transportReason(ctx, err))
	}

	status := Status{Code: resp.StatusCode(), Latency: resp.Time()}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	return status, nil
}

// transportReason describes err without the request url, which may carry
// credentials.
func transportReason(ctx context.Context, err error) string {
	if ctx.Err() != nil {
		return ctx.Err().Error()
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
