// Package settings provides loading, merging, and validation of the
// envresolve tool's own runtime settings.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. ENVRESOLVE_* environment variables
//  3. JSON settings file
//  4. Command-line flags
//
// The main entry point is [Get].
package settings
