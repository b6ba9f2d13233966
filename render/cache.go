package render

import (
	"strings"

	"github.com/lqcdutils/sigmondcfg/config"
)

// EnvCondaPrefix names the runtime-prefix variable folded into the cache
// and preset renderers. It is read-only environment input, never part of
// the resolved configuration.
const EnvCondaPrefix = "CONDA_PREFIX"

// Options carries the environment-derived hints a renderer folds in on
// top of the snapshot.
type Options struct {
	// CondaPrefix is the active runtime prefix, or "" when none is
	// detected. When set, prefix-relative path hints are added before
	// the configuration-specific variables.
	CondaPrefix string

	// ClearCompilers forces empty CMAKE_C_COMPILER/CMAKE_CXX_COMPILER
	// entries so the build system re-runs compiler auto-detection.
	ClearCompilers bool
}

// OptionsFromEnv builds Options from an environment snapshot.
func OptionsFromEnv(env config.Environment) Options {
	return Options{CondaPrefix: env.Get(EnvCondaPrefix)}
}

// CacheVariables assembles the shared cache-variable set used by both the
// init-cache and preset renderers: base build settings, runtime-prefix
// hints, then the -D definition vector folded in with later entries
// winning. Insertion order is preserved so output is stable.
func CacheVariables(rc *config.Resolved, opts Options) *VarSet {
	vars := NewVarSet()

	vars.Set("CMAKE_BUILD_TYPE", "Release")
	vars.Set("CMAKE_EXPORT_COMPILE_COMMANDS", "ON")
	vars.Set("CMAKE_CXX_STANDARD", "17")
	vars.Set("CMAKE_CXX_STANDARD_REQUIRED", "ON")
	vars.Set("CMAKE_CXX_EXTENSIONS", "OFF")

	if opts.CondaPrefix != "" {
		vars.Set("CMAKE_PREFIX_PATH", opts.CondaPrefix)
		vars.Set("CMAKE_BUILD_RPATH", opts.CondaPrefix+"/lib")
		vars.Set("HDF5_ROOT", opts.CondaPrefix)
		vars.Set("PYTHON_EXECUTABLE", opts.CondaPrefix+"/bin/python")
	}

	for _, arg := range CMakeArgs(rc) {
		body, ok := strings.CutPrefix(arg, "-D")
		if !ok {
			continue
		}
		if key, value, found := strings.Cut(body, "="); found {
			vars.Set(key, value)
		} else {
			vars.Set(body, "ON")
		}
	}

	if opts.ClearCompilers {
		vars.Set("CMAKE_C_COMPILER", "")
		vars.Set("CMAKE_CXX_COMPILER", "")
	}

	return vars
}

// CacheScript renders the variable set as a CMake init-cache file, one
// set() statement per variable with an inferred type tag.
func CacheScript(rc *config.Resolved, opts Options) []byte {
	var b strings.Builder
	for _, v := range CacheVariables(rc, opts).Items() {
		b.WriteString("set(")
		b.WriteString(v.Key)
		b.WriteString(" \"")
		b.WriteString(sanitizeValue(v.Value))
		b.WriteString("\" CACHE ")
		b.WriteString(classifyVariable(v.Key, v.Value))
		b.WriteString(" \"\")\n")
	}
	return []byte(b.String())
}

// WriteCache writes the init-cache script to path, overwriting wholesale.
// A failed write leaves no partial target behind.
func WriteCache(path string, rc *config.Resolved, opts Options) error {
	return atomicWriteFile(path, CacheScript(rc, opts))
}

// classifyVariable infers the CMake cache type tag for a variable.
// Precedence is fixed: boolean-looking values first, then compiler and
// path-like key suffixes, then plain STRING.
func classifyVariable(key, value string) string {
	switch strings.ToUpper(value) {
	case "ON", "OFF", "TRUE", "FALSE":
		return "BOOL"
	}
	if strings.HasSuffix(key, "_COMPILER") || key == "PYTHON_EXECUTABLE" {
		return "FILEPATH"
	}
	if strings.HasSuffix(key, "_DIR") || strings.HasSuffix(key, "_ROOT") ||
		strings.HasSuffix(key, "_PREFIX_PATH") || key == "CMAKE_PREFIX_PATH" {
		return "PATH"
	}
	return "STRING"
}

// sanitizeValue normalizes backslashes to forward slashes and escapes
// embedded quotes so the value survives CMake's string parsing.
func sanitizeValue(value string) string {
	value = strings.ReplaceAll(value, `\`, "/")
	return strings.ReplaceAll(value, `"`, `\"`)
}
