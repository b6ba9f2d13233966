package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/lqcdutils/sigmondcfg/render"
)

const defaultPresetsPath = "CMakeUserPresets.json"

// RunGeneratePresets renders the CMakeUserPresets document from the
// resolved configuration.
func RunGeneratePresets(args []string) error {
	fs := flag.NewFlagSet("generate-presets", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file to load (default: auto-detect)")
	fs.StringVar(configPath, "c", "", "Config file to load (shorthand)")
	output := fs.String("output", defaultPresetsPath, "Output file path")
	fs.StringVar(output, "o", defaultPresetsPath, "Output file path (shorthand)")
	clearCache := fs.Bool("clear-cache", false, "Clear compiler cache variables to force CMake auto-detection")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg generate-presets [flags]

Generate CMakeUserPresets.json from the resolved configuration.

Flags:
  -c, --config       Config file to load (default: auto-detect)
  -o, --output       Output file path (default: CMakeUserPresets.json)
      --clear-cache  Clear compiler cache variables to force CMake auto-detection
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rc, err := resolve(*configPath)
	if err != nil {
		return err
	}

	opts := renderOptions(*clearCache)
	warnMissingPrefix(opts, "Preset may not work correctly.")

	if err := render.WritePresets(*output, rc, opts); err != nil {
		return fmt.Errorf("error generating presets: %w", err)
	}
	fmt.Printf("Generated CMake presets: %s\n", *output)
	return nil
}
