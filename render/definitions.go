package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lqcdutils/sigmondcfg/config"
)

// CMakeArgs renders the -D definition vector for the build invocation.
// The ordering is fixed for compatibility with the downstream build:
// core enumerations first, then feature toggles, verbosity, the testing
// toggle, install overrides, the ensembles file, user extra definitions
// verbatim, per-library paths, and explicit compilers last. Absent values
// produce no entry; only the testing toggle always emits.
func CMakeArgs(rc *config.Resolved) []string {
	var args []string

	args = append(args,
		"-DPRECISION="+strings.ToLower(rc.Precision()),
		"-DNUMBERS="+strings.ToLower(rc.Numbers()),
		"-DDEFAULT_FILE_FORMAT="+strings.ToLower(rc.FileFormat()),
	)

	if rc.SkipQuery() {
		args = append(args, "-DSKIP_SIGMOND_QUERY=ON")
	}
	if rc.SkipBatch() {
		args = append(args, "-DSKIP_SIGMOND_BATCH=ON")
	}

	libs := rc.Libraries()
	minuitEnabled := false
	graceEnabled := false
	for _, name := range rc.EnabledOptionalLibraries() {
		switch name {
		case "minuit2":
			minuitEnabled = true
			args = append(args, "-DENABLE_MINUIT=ON")
		case "grace":
			graceEnabled = true
			args = append(args, "-DENABLE_GRACE=ON")
		}
	}

	if rc.Verbose() {
		args = append(args,
			"-DSIGMOND_VERBOSE=ON",
			"-DCMAKE_FIND_DEBUG_MODE=ON",
		)
	}

	if rc.TestingEnabled() {
		args = append(args, "-DENABLE_TESTING=ON")
	} else {
		args = append(args, "-DENABLE_TESTING=OFF")
	}

	if dir := rc.BatchInstallDir(); dir != "" {
		args = append(args, "-DSIGMOND_BATCH_INSTALL_DIR="+dir)
	}
	if dir := rc.QueryInstallDir(); dir != "" {
		args = append(args, "-DSIGMOND_QUERY_INSTALL_DIR="+dir)
	}

	if path := rc.DefaultEnsemblesFile(); path != "" {
		args = append(args, "-DDEFAULTENSFILE="+path)
	}

	for _, entry := range rc.Build().ExtraCMakeDefinitions {
		args = append(args, normalizeExtraDefinition(entry)...)
	}

	if dir := libs.HDF5.RootDir; dir != "" {
		args = append(args, "-DHDF5_DIR="+dir)
	}
	if path := libs.BLAS.LibraryPath; path != "" {
		args = append(args, "-DBLAS_LIBRARIES="+path)
	}
	if path := libs.LAPACK.LibraryPath; path != "" {
		args = append(args, "-DLAPACK_LIBRARIES="+path)
	}

	if minuitEnabled {
		if dir := libs.Minuit2.IncludeDir; dir != "" {
			args = append(args, "-DSIGMOND_MINUIT2_INCLUDE_DIR="+dir)
		}
		if dir := libs.Minuit2.LibraryDir; dir != "" {
			args = append(args, "-DSIGMOND_MINUIT2_LIBRARY_DIR="+dir)
		}
	}
	if graceEnabled {
		if dir := libs.Grace.IncludeDir; dir != "" {
			args = append(args, "-DSIGMOND_GRACE_INCLUDE_DIR="+dir)
		}
		if dir := libs.Grace.LibraryDir; dir != "" {
			args = append(args, "-DSIGMOND_GRACE_LIBRARY_DIR="+dir)
		}
	}

	if dir := libs.Accelerate.FrameworkDir; dir != "" {
		args = append(args, "-DSIGMOND_ACCELERATE_FRAMEWORK_DIR="+dir)
	}

	compiler := rc.Compiler()
	if compiler.CCompiler != "" {
		args = append(args, "-DCMAKE_C_COMPILER="+compiler.CCompiler)
	}
	if compiler.CXXCompiler != "" {
		args = append(args, "-DCMAKE_CXX_COMPILER="+compiler.CXXCompiler)
	}

	return args
}

// CMakeArgsString joins the definition vector into one shell-friendly
// line.
func CMakeArgsString(rc *config.Resolved) string {
	return strings.Join(CMakeArgs(rc), " ")
}

// ExportLine renders the definition vector as an exportable shell
// assignment.
func ExportLine(rc *config.Resolved) string {
	return fmt.Sprintf("export CMAKE_ARGS=%q", CMakeArgsString(rc))
}

// normalizeExtraDefinition converts one user-supplied extra definition
// into -D tokens. Strings pass through with a -D prefix added when
// absent; tables coerce booleans to ON/OFF and lists to semicolon-joined
// strings. Table keys are emitted in sorted order since the parsed form
// carries no ordering of its own.
func normalizeExtraDefinition(entry any) []string {
	switch v := entry.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "-D") {
			return []string{s}
		}
		return []string{"-D" + s}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		args := make([]string, 0, len(keys))
		for _, key := range keys {
			args = append(args, fmt.Sprintf("-D%s=%s", key, coerceDefinitionValue(v[key])))
		}
		return args
	default:
		return nil
	}
}

// coerceDefinitionValue renders a table value in CMake's vocabulary.
func coerceDefinitionValue(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "ON"
		}
		return "OFF"
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ";")
	default:
		return fmt.Sprintf("%v", v)
	}
}
