// Package cli implements the sigmondcfg subcommands. Each command is a
// Run function taking its raw arguments, mirroring the binary's command
// registry in cmd/sigmondcfg.
package cli

import (
	"fmt"
	"os"

	"github.com/lqcdutils/sigmondcfg/config"
	"github.com/lqcdutils/sigmondcfg/render"
)

// resolve runs a full resolution and prints the load report: the chosen
// config file to stdout, degraded-load diagnostics to stderr, and the
// advisory notes when verbose mode ended up enabled.
func resolve(configPath string) (*config.Resolved, error) {
	rc, report, err := config.Resolve(config.Options{ConfigPath: configPath})

	if report.ConfigFile != "" {
		fmt.Printf("Loaded Sigmond config from: %s\n", report.ConfigFile)
	}
	for _, diag := range report.Diagnostics {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", diag)
	}

	if err != nil {
		return nil, err
	}

	if rc.Verbose() && len(report.Advisories) > 0 {
		fmt.Println("Configuration warnings:")
		for _, advisory := range report.Advisories {
			fmt.Printf("  - %s\n", advisory)
		}
	}

	return rc, nil
}

// renderOptions builds the renderer options from the process environment.
func renderOptions(clearCompilers bool) render.Options {
	opts := render.OptionsFromEnv(config.OSEnvironment())
	opts.ClearCompilers = clearCompilers
	return opts
}

// warnMissingPrefix notes an absent runtime prefix; the renderers still
// run, they just omit the prefix-relative hints.
func warnMissingPrefix(opts render.Options, context string) {
	if opts.CondaPrefix == "" {
		fmt.Fprintf(os.Stderr, "Warning: CONDA_PREFIX not detected. %s\n", context)
	}
}
