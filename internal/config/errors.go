// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors, one per [Kind]. Every [*Error] matches the sentinel of its
// kind with [errors.Is].
var (
	// ErrMalformedEntry is returned by [Load] for a non-blank, non-comment line
	// without '=' or with an empty key.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrMissingKey is returned when a required key is absent.
	ErrMissingKey = errors.New("missing key")
	// ErrInvalidURL is returned when a value is not a well-formed URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidBasicAuth is returned when a value is not a user:pass pair.
	ErrInvalidBasicAuth = errors.New("invalid basic auth")
	// ErrInvalidInteger is returned when a value is not an integer in range.
	ErrInvalidInteger = errors.New("invalid integer")
)

// Kind classifies an [Error].
type Kind int

const (
	MalformedEntry Kind = iota + 1
	MissingKey
	InvalidURL
	InvalidBasicAuth
	InvalidInteger
)

func (k Kind) String() string {
	switch k {
	case MalformedEntry:
		return "MalformedEntry"
	case MissingKey:
		return "MissingKey"
	case InvalidURL:
		return "InvalidURL"
	case InvalidBasicAuth:
		return "InvalidBasicAuth"
	case InvalidInteger:
		return "InvalidInteger"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case MalformedEntry:
		return ErrMalformedEntry
	case MissingKey:
		return ErrMissingKey
	case InvalidURL:
		return ErrInvalidURL
	case InvalidBasicAuth:
		return ErrInvalidBasicAuth
	case InvalidInteger:
		return ErrInvalidInteger
	default:
		return nil
	}
}

// Error is the structured error returned by every resolver operation.
//
// Value holds the offending raw value, if any. It is included in the message
// only when Key is not sensitive (see [IsSecret]); Reason never contains the
// value.
type Error struct {
	Kind   Kind
	Key    string
	Value  string
	Reason string
	Line   int
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Key != "" {
		msg += fmt.Sprintf(" %s", e.Key)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" value %q", DisplayValue(e.Key, e.Value))
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error found in err's tree, or zero.
func KindOf(err error) Kind {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}

	return 0
}

// Errors returns every *Error in err's tree, depth first, including those
// joined with errors.Join.
func Errors(err error) []*Error {
	var out []*Error

	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case *Error:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(e.Unwrap())
		}
	}
	walk(err)

	return out
}
