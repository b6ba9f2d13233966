package config

// Report carries the observable side effects of a resolution: which file
// was used, degraded-load diagnostics, and the advisory notes that are
// shown only in verbose mode. Library callers decide how to present it;
// the CLI prints diagnostics to stderr and advisories under verbose.
type Report struct {
	// ConfigFile is the path of the file that supplied the file layer,
	// or "" when resolution ran from defaults and environment only.
	ConfigFile string

	// Diagnostics records degraded-but-successful outcomes (missing or
	// unparseable file). Never fatal.
	Diagnostics []string

	// Advisories are logically valid but likely unintended settings,
	// surfaced only when verbose mode is requested.
	Advisories []string
}

func (r *Report) addDiagnostic(msg string) {
	r.Diagnostics = append(r.Diagnostics, msg)
}

// Options controls a single resolution.
type Options struct {
	// ConfigPath forces an explicit configuration file. When empty the
	// loader consults SIGMOND_CONFIG and the standard search locations.
	ConfigPath string

	// Environment is the snapshot consulted for overrides and file
	// discovery. Nil means the real process environment.
	Environment Environment

	// Loader overrides the file loader, mainly for tests. Nil means a
	// loader anchored at the real process state.
	Loader *Loader
}

// Resolve merges defaults, the configuration file, and environment
// overrides into one validated snapshot. The returned Report is non-nil
// even on failure; Resolved is nil exactly when err is non-nil. The only
// fatal outcome is a *ValidationError.
func Resolve(opts Options) (*Resolved, *Report, error) {
	env := opts.Environment
	if env == nil {
		env = OSEnvironment()
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewLoader(env)
	}

	report := &Report{}

	tree, err := defaultTree()
	if err != nil {
		return nil, report, err
	}

	fileLayer := loader.Load(opts.ConfigPath, report)
	tree = mergeLayer(tree, fileLayer)
	applyEnvOverrides(tree, env)

	settings, err := decodeSettings(tree)
	if err != nil {
		return nil, report, &ValidationError{Violations: []Violation{{
			Field:  "configuration",
			Value:  report.ConfigFile,
			Reason: err.Error(),
		}}}
	}

	advisories, verr := validate(settings)
	report.Advisories = advisories
	if verr != nil {
		return nil, report, verr
	}

	return &Resolved{settings: *settings}, report, nil
}
