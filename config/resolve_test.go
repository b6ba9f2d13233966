package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveWith resolves against a synthetic environment and a loader
// anchored at an empty or caller-populated temp dir.
func resolveWith(t *testing.T, content string, env Environment) (*Resolved, *Report, error) {
	t.Helper()
	workDir := t.TempDir()
	if content != "" {
		writeFile(t, filepath.Join(workDir, ConfigFileName), content)
	}
	loader := &Loader{Env: env, WorkDir: workDir}
	return Resolve(Options{Environment: env, Loader: loader})
}

func TestResolveDefaults(t *testing.T) {
	rc, report, err := resolveWith(t, "", Environment{})
	require.NoError(t, err)
	require.NotNil(t, rc)

	assert.Equal(t, "", report.ConfigFile)
	assert.Equal(t, PrecisionDouble, rc.Precision())
	assert.Equal(t, NumbersComplex, rc.Numbers())
	assert.Equal(t, FileFormatHDF5, rc.FileFormat())
	assert.Equal(t, 0, rc.RawBuildJobs())
	assert.True(t, rc.TestingEnabled())
	assert.False(t, rc.SkipQuery())
	assert.False(t, rc.SkipBatch())
	assert.False(t, rc.Verbose())
	assert.Empty(t, rc.EnabledOptionalLibraries())
}

func TestResolveFileLayer(t *testing.T) {
	rc, report, err := resolveWith(t, `
[build]
precision = "single"
numbers = "real"
build_jobs = 8
skip_batch = true

[libraries.hdf5]
root_dir = "/opt/hdf5"

[compiler]
cxx_flags = ["-O3", "-march=native"]
`, Environment{})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ConfigFile)
	assert.Equal(t, PrecisionSingle, rc.Precision())
	assert.Equal(t, NumbersReal, rc.Numbers())
	assert.Equal(t, 8, rc.RawBuildJobs())
	assert.Equal(t, 8, rc.BuildJobs())
	assert.True(t, rc.SkipBatch())
	assert.Equal(t, "/opt/hdf5", rc.Libraries().HDF5.RootDir)
	assert.Equal(t, []string{"-O3", "-march=native"}, rc.ExtraCXXFlags())

	// Keys absent from the file keep their defaults.
	assert.Equal(t, FileFormatHDF5, rc.FileFormat())
	assert.True(t, rc.TestingEnabled())
}

func TestResolveEnvOverrides(t *testing.T) {
	t.Run("TruthyOverrideWinsOverFile", func(t *testing.T) {
		rc, _, err := resolveWith(t, `
[build]
skip_query = false
`, Environment{EnvSkipQuery: "yes"})
		require.NoError(t, err)
		assert.True(t, rc.SkipQuery())
	})

	t.Run("MonotonicOverride", func(t *testing.T) {
		// A falsy env value never turns a file-set flag back off.
		rc, _, err := resolveWith(t, `
[build]
verbose = true
`, Environment{EnvVerbose: "false"})
		require.NoError(t, err)
		assert.True(t, rc.Verbose())
	})

	t.Run("EnsemblesFile", func(t *testing.T) {
		rc, _, err := resolveWith(t, `
[build]
default_ensembles_file = "/from/file.xml"
`, Environment{EnvDefaultEnsembles: "/from/env.xml"})
		require.NoError(t, err)
		assert.Equal(t, "/from/env.xml", rc.DefaultEnsemblesFile())
	})

	t.Run("NonOverridableKeysIgnoreEnv", func(t *testing.T) {
		rc, _, err := resolveWith(t, `
[build]
precision = "single"
`, Environment{"SIGMOND_PRECISION": "double"})
		require.NoError(t, err)
		assert.Equal(t, PrecisionSingle, rc.Precision())
	})
}

func TestResolveValidationFailure(t *testing.T) {
	rc, _, err := resolveWith(t, `
[build]
precision = "bogus"
default_file_format = "bogus"
`, Environment{})
	assert.Nil(t, rc)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
	assert.Contains(t, err.Error(), "precision")
	assert.Contains(t, err.Error(), "default_file_format")
}

func TestResolveDegradedLoad(t *testing.T) {
	rc, report, err := resolveWith(t, `this is { not parseable`, Environment{})
	require.NoError(t, err)
	require.NotNil(t, rc)

	assert.Equal(t, "", report.ConfigFile)
	require.NotEmpty(t, report.Diagnostics)
	assert.Equal(t, PrecisionDouble, rc.Precision())
}

func TestResolveAdvisories(t *testing.T) {
	rc, report, err := resolveWith(t, `
[build]
enable_minuit = true
verbose = true
`, Environment{})
	require.NoError(t, err)

	assert.True(t, rc.Verbose())
	require.Len(t, report.Advisories, 1)
	assert.Contains(t, report.Advisories[0], "Minuit2")
	assert.Equal(t, []string{"minuit2"}, rc.EnabledOptionalLibraries())
}

func TestResolveUnknownKeysIgnored(t *testing.T) {
	rc, _, err := resolveWith(t, `
[build]
precision = "single"
no_such_key = "whatever"

[mystery]
key = 1
`, Environment{})
	require.NoError(t, err)
	assert.Equal(t, PrecisionSingle, rc.Precision())
}

func TestResolvedImmutability(t *testing.T) {
	rc, _, err := resolveWith(t, `
[build]
extra_cmake_definitions = ["FOO"]

[compiler]
cxx_flags = ["-O2"]
`, Environment{})
	require.NoError(t, err)

	build := rc.Build()
	build.ExtraCMakeDefinitions[0] = "MUTATED"
	assert.Equal(t, "FOO", rc.Build().ExtraCMakeDefinitions[0])

	flags := rc.ExtraCXXFlags()
	flags[0] = "-O0"
	assert.Equal(t, []string{"-O2"}, rc.ExtraCXXFlags())
}

func TestBuildJobsAutoDetect(t *testing.T) {
	rc, _, err := resolveWith(t, "", Environment{})
	require.NoError(t, err)
	assert.Equal(t, 0, rc.RawBuildJobs())
	assert.GreaterOrEqual(t, rc.BuildJobs(), 1)
}
