// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoCredentials is returned by [NewHandler] when the basic auth
	// credential gating /api has no username.
	ErrNoCredentials = errors.New("inspector credentials are not configured")

	// ErrNoMetrics is returned by [NewHandler] when no metrics are given.
	ErrNoMetrics = errors.New("inspector metrics are not configured")
)
