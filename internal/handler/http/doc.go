// Package http implements the read-only config inspector.
//
// It serves the resolved deployment configuration with every secret
// redacted, next to liveness, build info and Prometheus metrics. Request
// tracing, access logging and basic auth are handled by middleware before a
// request reaches a handler.
package http
