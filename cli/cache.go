package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/lqcdutils/sigmondcfg/render"
)

const defaultCachePath = "_sigmond_cache_init.cmake"

// RunWriteCache renders the CMake init-cache script from the resolved
// configuration.
func RunWriteCache(args []string) error {
	fs := flag.NewFlagSet("write-cache", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file to load (default: auto-detect)")
	fs.StringVar(configPath, "c", "", "Config file to load (shorthand)")
	output := fs.String("output", defaultCachePath, "Output file path")
	fs.StringVar(output, "o", defaultCachePath, "Output file path (shorthand)")
	clearCache := fs.Bool("clear-cache", false, "Clear compiler cache variables to force CMake auto-detection")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg write-cache [flags]

Write a CMake init-cache file from the resolved configuration.

Flags:
  -c, --config       Config file to load (default: auto-detect)
  -o, --output       Output file path (default: _sigmond_cache_init.cmake)
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
	warnMissingPrefix(opts, "Cache may be suboptimal.")

	if err := render.WriteCache(*output, rc, opts); err != nil {
		return fmt.Errorf("error writing cache: %w", err)
	}
	fmt.Printf("Wrote CMake init cache: %s\n", *output)
	return nil
}
