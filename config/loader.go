package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at an explicit
// configuration file, checked before the standard search locations.
const EnvConfigPath = "SIGMOND_CONFIG"

// ConfigFileName is the canonical configuration file name.
const ConfigFileName = "sigmond.toml"

// Loader locates and parses the configuration file. All filesystem
// anchors are explicit fields so tests can point the search at temporary
// directories.
type Loader struct {
	// Env is the environment snapshot consulted for EnvConfigPath.
	Env Environment

	// WorkDir is searched for sigmond.toml and .sigmond.toml.
	WorkDir string

	// ConfigDir is the user configuration directory (~/.config).
	ConfigDir string

	// InstallDir is the directory the tool is installed in.
	InstallDir string
}

// NewLoader builds a Loader anchored at the real process state.
func NewLoader(env Environment) *Loader {
	l := &Loader{Env: env}
	if cwd, err := os.Getwd(); err == nil {
		l.WorkDir = cwd
	}
	if home, err := os.UserHomeDir(); err == nil {
		l.ConfigDir = filepath.Join(home, ".config")
	}
	if exe, err := os.Executable(); err == nil {
		l.InstallDir = filepath.Dir(exe)
	}
	return l
}

// candidatePaths returns the ordered search locations used when no
// explicit path is given.
func (l *Loader) candidatePaths() []string {
	var paths []string
	if l.WorkDir != "" {
		paths = append(paths,
			filepath.Join(l.WorkDir, ConfigFileName),
			filepath.Join(l.WorkDir, "."+ConfigFileName),
		)
	}
	if l.ConfigDir != "" {
		paths = append(paths, filepath.Join(l.ConfigDir, ConfigFileName))
	}
	if l.InstallDir != "" {
		paths = append(paths, filepath.Join(l.InstallDir, ConfigFileName))
	}
	return paths
}

// Locate resolves the configuration file path. An explicit path always
// wins; otherwise the EnvConfigPath variable is checked, then the
// standard search locations. Returns "" when nothing was found.
func (l *Loader) Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if envPath := l.Env.Get(EnvConfigPath); envPath != "" {
		return envPath
	}
	for _, path := range l.candidatePaths() {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			return path
		}
	}
	return ""
}

// Load attempts exactly one file load and returns the file layer as a
// loose tree. A missing or unparseable file yields an empty tree and a
// diagnostic on the report; only the validator can fail resolution.
func (l *Loader) Load(explicit string, report *Report) map[string]any {
	path := l.Locate(explicit)
	if path == "" {
		report.addDiagnostic("no configuration file found, using defaults")
		return map[string]any{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		report.addDiagnostic(fmt.Sprintf("failed to read config file %s: %v", path, err))
		return map[string]any{}
	}

	tree := make(map[string]any)
	switch format := detectFileFormat(path); format {
	case "toml":
		err = toml.Unmarshal(data, &tree)
	case "json":
		err = json.Unmarshal(data, &tree)
	case "yaml":
		err = yaml.Unmarshal(data, &tree)
	}
	if err != nil {
		report.addDiagnostic(fmt.Sprintf("failed to parse config file %s: %v", path, err))
		return map[string]any{}
	}

	report.ConfigFile = path
	return normalizeTree(tree)
}

// detectFileFormat picks the parser from the file extension. TOML is the
// native format and the fallback for unknown extensions.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}

// normalizeTree rewrites parser-specific map types into map[string]any so
// the merge and decode layers see one shape regardless of input format.
// yaml.v3 in particular produces map[string]any already, but nested
// tables from other sources may arrive as map[any]any.
func normalizeTree(tree map[string]any) map[string]any {
	normalized := make(map[string]any, len(tree))
	for key, value := range tree {
		normalized[key] = normalizeValue(value)
	}
	return normalized
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeTree(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, val := range v {
			m[fmt.Sprintf("%v", key)] = normalizeValue(val)
		}
		return m
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = normalizeValue(item)
		}
		return list
	default:
		return value
	}
}
