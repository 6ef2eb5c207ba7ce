// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// URL is a parsed URL value with its components split out.
//
// String and GoString return the redacted form so a URL printed by accident
// never exposes its password; use [URL.Raw] to obtain the original text.
type URL struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     string
	// Path is the URL path without its leading '/'. For a database URL it
	// is the database name.
	Path string

	raw string
	u   *url.URL
}

// Raw returns the value exactly as it was declared.
func (u *URL) Raw() string { return u.raw }

// Redacted returns the URL with the password replaced.
func (u *URL) Redacted() string { return u.u.Redacted() }

// HostPort returns Host:Port, or just Host when no port was declared.
func (u *URL) HostPort() string { return u.u.Host }

// URL returns a copy of the underlying *url.URL.
func (u *URL) URL() *url.URL {
	c := *u.u
	return &c
}

func (u *URL) String() string   { return u.Redacted() }
func (u *URL) GoString() string { return u.Redacted() }

// BasicAuth is a username:password credential.
type BasicAuth struct {
	Username string
	Password string
}

// String never reveals the password.
func (b BasicAuth) String() string   { return b.Username + ":" + Redacted }
func (b BasicAuth) GoString() string { return b.String() }

// Require returns the value for key or an [*Error] of kind [MissingKey].
func (s *Set) Require(key string) (string, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return "", &Error{Kind: MissingKey, Key: key}
	}

	return v, nil
}

// RequireURL returns the value for key parsed as a URL. The URL must carry a
// scheme and a host; failures yield [InvalidURL] with a reason that never
// quotes the value.
func (s *Set) RequireURL(key string) (*URL, error) {
	v, err := s.Require(key)
	if err != nil {
		return nil, err
	}

	u, err := parseURL(key, v)
	return u, s.atLine(key, err)
}

// RequireDatabaseURL is [Set.RequireURL] plus the components a database
// connection needs: a user and a database name.
func (s *Set) RequireDatabaseURL(key string) (*URL, error) {
	u, err := s.RequireURL(key)
	if err != nil {
		return nil, err
	}

	switch {
	case u.User == "":
		return nil, s.atLine(key, &Error{Kind: InvalidURL, Key: key, Value: u.raw, Reason: "missing user"})
	case u.Path == "":
		return nil, s.atLine(key, &Error{Kind: InvalidURL, Key: key, Value: u.raw, Reason: "missing database name"})
	}

	return u, nil
}

func parseURL(key, raw string) (*URL, error) {
	invalid := func(reason string) error {
		return &Error{Kind: InvalidURL, Key: key, Value: raw, Reason: reason}
	}

	// url.Parse errors embed the input, so only a fixed reason is reported.
	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalid("unparsable url")
	}
	if u.Scheme == "" {
		return nil, invalid("missing scheme")
	}
	if u.Opaque != "" || u.Host == "" {
		return nil, invalid("missing host")
	}
	if u.Hostname() == "" {
		return nil, invalid("missing host")
	}

	parsed := &URL{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Port:   u.Port(),
		Path:   strings.TrimPrefix(u.Path, "/"),
		raw:    raw,
		u:      u,
	}
	if u.User != nil {
		parsed.User = u.User.Username()
		parsed.Password, _ = u.User.Password()
	}

	return parsed, nil
}

// RequireBasicAuth returns the value for key split on the first ':' into a
// username and password. A missing separator or an empty username yields
// [InvalidBasicAuth].
func (s *Set) RequireBasicAuth(key string) (BasicAuth, error) {
	v, err := s.Require(key)
	if err != nil {
		return BasicAuth{}, err
	}

	user, pass, found := strings.Cut(v, ":")
	if !found {
		return BasicAuth{}, s.atLine(key, &Error{Kind: InvalidBasicAuth, Key: key, Reason: "missing ':' separator"})
	}
	if user == "" {
		return BasicAuth{}, s.atLine(key, &Error{Kind: InvalidBasicAuth, Key: key, Reason: "empty username"})
	}

	return BasicAuth{Username: user, Password: pass}, nil
}

// RequireInt returns the value for key as a base-10 integer or an [*Error]
// of kind [InvalidInteger] carrying the offending value.
func (s *Set) RequireInt(key string) (int, error) {
	v, err := s.Require(key)
	if err != nil {
		return 0, err
	}

	n, err := parseInt(key, v)
	return n, s.atLine(key, err)
}

// IntOr is [Set.RequireInt] with a default used when key is absent. A present
// but non-numeric value still fails.
func (s *Set) IntOr(key string, def int) (int, error) {
	v, ok := s.Lookup(key)
	if !ok {
		return def, nil
	}

	n, err := parseInt(key, v)
	return n, s.atLine(key, err)
}

// RequirePositiveInt is [Set.RequireInt] restricted to values >= 1.
func (s *Set) RequirePositiveInt(key string) (int, error) {
	n, err := s.RequireInt(key)
	if err != nil {
		return 0, err
	}

	n, err = positive(key, n)
	return n, s.atLine(key, err)
}

// PositiveIntOr is [Set.IntOr] restricted to values >= 1.
func (s *Set) PositiveIntOr(key string, def int) (int, error) {
	n, err := s.IntOr(key, def)
	if err != nil {
		return 0, err
	}

	n, err = positive(key, n)
	return n, s.atLine(key, err)
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &Error{Kind: InvalidInteger, Key: key, Value: v, Reason: "not an integer"}
	}

	return n, nil
}

func positive(key string, n int) (int, error) {
	if n < 1 {
		return 0, &Error{Kind: InvalidInteger, Key: key, Value: strconv.Itoa(n), Reason: "must be positive"}
	}

	return n, nil
}

// atLine records the source line of key on a config error that has none.
func (s *Set) atLine(key string, err error) error {
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Line > 0 {
		return err
	}
	if e, ok := s.Entry(key); ok {
		cfgErr.Line = e.Line
	}

	return err
}
