// Package config resolves the deployment's environment-variable file.
//
// A [Set] is loaded once at bootstrap from a KEY=VALUE source ([Load],
// [LoadFile]), merged with process-environment overrides ([MergeOverrides],
// [FromEnviron]) and validated against a [Schema]. Dependent subsystems then
// read typed values through the accessors ([Set.Require], [Set.RequireURL],
// [Set.RequireBasicAuth], [Set.RequireInt], [Set.IntOr]) instead of parsing
// raw strings themselves.
//
// All failures are [*Error] values whose messages never contain the value of
// a secret key (see [IsSecret]).
package config
