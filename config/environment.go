package config

import (
	"os"
	"strings"
)

// Environment is an immutable snapshot of process environment variables.
// Resolution reads the ambient environment only through this type so that
// resolving against a synthetic environment is possible in tests.
type Environment map[string]string

// OSEnvironment captures the current process environment.
func OSEnvironment() Environment {
	environ := os.Environ()
	env := make(Environment, len(environ))
	for _, entry := range environ {
		if i := strings.IndexByte(entry, '='); i >= 0 {
			env[entry[:i]] = entry[i+1:]
		}
	}
	return env
}

// Get returns the value of name, or "" if unset.
func (e Environment) Get(name string) string {
	return e[name]
}

// Lookup returns the value of name and whether it was set.
func (e Environment) Lookup(name string) (string, bool) {
	value, ok := e[name]
	return value, ok
}

// truthy reports whether an override value requests a boolean flag to be
// turned on. Only the tokens "1", "true" and "yes" (case-insensitive)
// count; any other value, including the empty string, leaves the flag
// untouched. Overrides are add-only: there is no token that turns a flag
// off.
func truthy(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	}
	return false
}
