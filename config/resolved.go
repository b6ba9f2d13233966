package config

import "runtime"

// Resolved is the immutable configuration snapshot produced by a
// successful resolution. It is constructed only after validation and is
// never mutated afterwards; every accessor returns a copy of any mutable
// data it exposes.
type Resolved struct {
	settings Settings
}

// Build returns a copy of the [build] section. The extra-definitions
// slice is copied so callers cannot reach back into the snapshot.
func (r *Resolved) Build() BuildSettings {
	build := r.settings.Build
	build.ExtraCMakeDefinitions = append([]any(nil), build.ExtraCMakeDefinitions...)
	return build
}

// Libraries returns a copy of the [libraries] section.
func (r *Resolved) Libraries() LibrarySettings {
	return r.settings.Libraries
}

// Compiler returns a copy of the [compiler] section.
func (r *Resolved) Compiler() CompilerSettings {
	compiler := r.settings.Compiler
	compiler.CXXFlags = append([]string(nil), compiler.CXXFlags...)
	return compiler
}

// SkipQuery reports whether the query executable build is skipped.
func (r *Resolved) SkipQuery() bool { return r.settings.Build.SkipQuery }

// SkipBatch reports whether the batch executable build is skipped.
func (r *Resolved) SkipBatch() bool { return r.settings.Build.SkipBatch }

// Verbose reports whether verbose build output was requested.
func (r *Resolved) Verbose() bool { return r.settings.Build.Verbose }

// TestingEnabled reports whether the test suite build is enabled.
func (r *Resolved) TestingEnabled() bool { return r.settings.Build.EnableTesting }

// Precision returns the floating point precision setting.
func (r *Resolved) Precision() string { return r.settings.Build.Precision }

// Numbers returns the number domain setting.
func (r *Resolved) Numbers() string { return r.settings.Build.Numbers }

// FileFormat returns the default data file format.
func (r *Resolved) FileFormat() string { return r.settings.Build.DefaultFileFormat }

// RawBuildJobs returns the configured parallel job count as stored, with
// 0 meaning auto-detect.
func (r *Resolved) RawBuildJobs() int { return r.settings.Build.BuildJobs }

// BuildJobs returns the effective parallel job count. A configured value
// of 0 resolves to the machine's logical CPU count, read at call time
// rather than cached on the snapshot.
func (r *Resolved) BuildJobs() int {
	if jobs := r.settings.Build.BuildJobs; jobs > 0 {
		return jobs
	}
	return runtime.NumCPU()
}

// BatchInstallDir returns the custom install directory for the batch
// executable, or "" for the default location.
func (r *Resolved) BatchInstallDir() string { return r.settings.Build.BatchInstallDir }

// QueryInstallDir returns the custom install directory for the query
// executable, or "" for the default location.
func (r *Resolved) QueryInstallDir() string { return r.settings.Build.QueryInstallDir }

// DefaultEnsemblesFile returns the configured ensembles XML path, or "".
func (r *Resolved) DefaultEnsemblesFile() string { return r.settings.Build.DefaultEnsemblesFile }

// ExtraCXXFlags returns the user-supplied C++ compiler flags in order.
func (r *Resolved) ExtraCXXFlags() []string {
	return append([]string(nil), r.settings.Compiler.CXXFlags...)
}

// EnabledOptionalLibraries lists the optional libraries whose enable
// flags are set, in a fixed order.
func (r *Resolved) EnabledOptionalLibraries() []string {
	var enabled []string
	if r.settings.Build.EnableMinuit {
		enabled = append(enabled, "minuit2")
	}
	if r.settings.Build.EnableGrace {
		enabled = append(enabled, "grace")
	}
	return enabled
}
