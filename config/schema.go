package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Recognized values for the enumerated build settings.
const (
	PrecisionDouble = "double"
	PrecisionSingle = "single"

	NumbersComplex = "complex"
	NumbersReal    = "real"

	FileFormatHDF5    = "hdf5"
	FileFormatFstream = "fstream"
)

// BuildSettings holds the [build] section of the configuration.
type BuildSettings struct {
	SkipQuery            bool   `toml:"skip_query"`
	SkipBatch            bool   `toml:"skip_batch"`
	Verbose              bool   `toml:"verbose"`
	EnableTesting        bool   `toml:"enable_testing"`
	EnableMinuit         bool   `toml:"enable_minuit"`
	EnableGrace          bool   `toml:"enable_grace"`
	Precision            string `toml:"precision"`
	Numbers              string `toml:"numbers"`
	DefaultFileFormat    string `toml:"default_file_format"`
	BuildJobs            int    `toml:"build_jobs"`
	BatchInstallDir      string `toml:"batch_install_dir"`
	QueryInstallDir      string `toml:"query_install_dir"`
	DefaultEnsemblesFile string `toml:"default_ensembles_file"`

	// ExtraCMakeDefinitions entries are either bare strings ("FOO",
	// "FOO=BAR", "-DFOO=BAR") or tables of key -> value. Input order is
	// preserved and duplicates are kept; normalization to -D tokens
	// happens at render time.
	ExtraCMakeDefinitions []any `toml:"extra_cmake_definitions"`
}

// RootPaths points at an installation prefix containing include/ and lib/.
type RootPaths struct {
	RootDir string `toml:"root_dir"`
}

// LibraryFile points at a specific library file (e.g. libopenblas.so).
type LibraryFile struct {
	LibraryPath string `toml:"library_path"`
}

// FrameworkPaths locates a macOS framework directory.
type FrameworkPaths struct {
	FrameworkDir string `toml:"framework_dir"`
}

// SplitPaths holds explicit include and library directories for libraries
// whose headers and objects live apart.
type SplitPaths struct {
	IncludeDir string `toml:"include_dir"`
	LibraryDir string `toml:"library_dir"`
}

// LibrarySettings holds the [libraries] section. Empty paths mean "defer
// to the build system's auto-detection".
type LibrarySettings struct {
	HDF5       RootPaths      `toml:"hdf5"`
	BLAS       LibraryFile    `toml:"blas"`
	LAPACK     LibraryFile    `toml:"lapack"`
	Accelerate FrameworkPaths `toml:"accelerate"`
	Minuit2    SplitPaths     `toml:"minuit2"`
	Grace      SplitPaths     `toml:"grace"`
}

// CompilerSettings holds the [compiler] section.
type CompilerSettings struct {
	CCompiler   string   `toml:"c_compiler"`
	CXXCompiler string   `toml:"cxx_compiler"`
	CXXFlags    []string `toml:"cxx_flags"`
}

// Settings is the full, strongly typed configuration tree. Instances are
// only constructed from merged data that has passed validation.
type Settings struct {
	Build     BuildSettings    `toml:"build"`
	Libraries LibrarySettings  `toml:"libraries"`
	Compiler  CompilerSettings `toml:"compiler"`
}

// Defaults returns the built-in configuration values, the lowest
// precedence layer of resolution.
func Defaults() Settings {
	return Settings{
		Build: BuildSettings{
			SkipQuery:             false,
			SkipBatch:             false,
			Verbose:               false,
			EnableTesting:         true,
			EnableMinuit:          false,
			EnableGrace:           false,
			Precision:             PrecisionDouble,
			Numbers:               NumbersComplex,
			DefaultFileFormat:     FileFormatHDF5,
			BuildJobs:             0, // 0 = auto-detect at query time
			ExtraCMakeDefinitions: []any{},
		},
		Compiler: CompilerSettings{
			CXXFlags: []string{},
		},
	}
}

// defaultTree renders Defaults as a loose key/value tree, the form the
// merge layers operate on before validation.
func defaultTree() (map[string]any, error) {
	tree := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &tree,
		TagName: "toml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create defaults decoder: %w", err)
	}
	defaults := Defaults()
	if err := decoder.Decode(&defaults); err != nil {
		return nil, fmt.Errorf("failed to build default tree: %w", err)
	}
	return tree, nil
}

// decodeSettings converts a merged loose tree into typed Settings.
// Unknown keys are ignored; values are converted weakly so numeric and
// boolean types round-trip through any of the supported file formats.
func decodeSettings(tree map[string]any) (*Settings, error) {
	var settings Settings
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &settings,
		TagName:          "toml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create settings decoder: %w", err)
	}
	if err := decoder.Decode(tree); err != nil {
		return nil, fmt.Errorf("failed to decode merged configuration: %w", err)
	}
	return &settings, nil
}
