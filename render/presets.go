package render

import (
	"encoding/json"
	"fmt"

	"github.com/lqcdutils/sigmondcfg/config"
)

// Preset document field names follow the CMake presets schema, version 5.

// ConfigurePreset is one entry in the configurePresets array.
type ConfigurePreset struct {
	Name           string            `json:"name"`
	DisplayName    string            `json:"displayName,omitempty"`
	Inherits       string            `json:"inherits,omitempty"`
	Generator      string            `json:"generator,omitempty"`
	BinaryDir      string            `json:"binaryDir"`
	CacheVariables map[string]string `json:"cacheVariables"`
}

// BuildPreset is one entry in the buildPresets array.
type BuildPreset struct {
	Name            string `json:"name"`
	ConfigurePreset string `json:"configurePreset"`
	Verbose         bool   `json:"verbose"`
	Jobs            int    `json:"jobs"`
}

// PresetsDocument is the full CMakeUserPresets document.
type PresetsDocument struct {
	Version          int               `json:"version"`
	ConfigurePresets []ConfigurePreset `json:"configurePresets"`
	BuildPresets     []BuildPreset     `json:"buildPresets"`
}

// Presets renders the preset document: a release configure preset
// carrying the full cache-variable set, a debug preset inheriting from it
// that overrides only the build type, and matching build presets with the
// resolved verbosity and job count.
func Presets(rc *config.Resolved, opts Options) *PresetsDocument {
	return &PresetsDocument{
		Version: 5,
		ConfigurePresets: []ConfigurePreset{
			{
				Name:           "sigmond-auto-release",
				DisplayName:    "Sigmond Auto Release",
				Generator:      "Unix Makefiles",
				BinaryDir:      "${sourceDir}/build",
				CacheVariables: CacheVariables(rc, opts).Map(),
			},
			{
				Name:      "sigmond-auto-debug",
				Inherits:  "sigmond-auto-release",
				BinaryDir: "${sourceDir}/build-debug",
				CacheVariables: map[string]string{
					"CMAKE_BUILD_TYPE": "Debug",
				},
			},
		},
		BuildPresets: []BuildPreset{
			{
				Name:            "build-auto-release",
				ConfigurePreset: "sigmond-auto-release",
				Verbose:         rc.Verbose(),
				Jobs:            rc.BuildJobs(),
			},
			{
				Name:            "build-auto-debug",
				ConfigurePreset: "sigmond-auto-debug",
				Verbose:         rc.Verbose(),
				Jobs:            rc.BuildJobs(),
			},
		},
	}
}

// PresetsJSON marshals the preset document. encoding/json emits map keys
// in sorted order, so output is byte-identical across renders.
func PresetsJSON(rc *config.Resolved, opts Options) ([]byte, error) {
	data, err := json.MarshalIndent(Presets(rc, opts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal presets: %w", err)
	}
	return append(data, '\n'), nil
}

// WritePresets writes the preset document to path, overwriting wholesale.
func WritePresets(path string, rc *config.Resolved, opts Options) error {
	data, err := PresetsJSON(rc, opts)
	if err != nil {
		return err
	}
	return atomicWriteFile(path, data)
}
