// Package config resolves the Sigmond build configuration from layered
// sources: built-in defaults, an optional TOML/JSON/YAML settings file,
// and a fixed set of environment variable overrides.
//
// Resolution is a pure function of (defaults, file contents, environment
// snapshot). The ambient process state is captured once in an Environment
// value, so tests can resolve against synthetic environments without
// touching os.Setenv.
//
// Precedence (lowest to highest):
//  1. Default values (Defaults)
//  2. Configuration file (sigmond.toml or the path in SIGMOND_CONFIG)
//  3. Environment overrides (SIGMOND_SKIP_QUERY, SIGMOND_SKIP_BATCH,
//     SIGMOND_VERBOSE, DEFAULTENSFILE)
//
// A missing or unparseable file is a degraded load, not an error: the
// file layer collapses to the empty tree and a diagnostic is recorded on
// the Report. Only validation can make resolution fail, and it reports
// every violation at once.
//
// The Resolved snapshot produced by Resolve is immutable; renderers and
// other consumers read it through typed accessors.
package config
