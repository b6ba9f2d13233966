package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/lqcdutils/sigmondcfg/render"
)

// RunCMakeArgs prints the derived -D definition vector, either as a
// plain line or as an exportable shell assignment.
func RunCMakeArgs(args []string) error {
	fs := flag.NewFlagSet("cmake-args", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file to load (default: auto-detect)")
	fs.StringVar(configPath, "c", "", "Config file to load (shorthand)")
	asEnv := fs.Bool("as-env", false, `Emit: export CMAKE_ARGS="..."`)

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg cmake-args [flags]

Print the -D CMake arguments derived from sigmond.toml and environment.

Flags:
  -c, --config    Config file to load (default: auto-detect)
      --as-env    Emit: export CMAKE_ARGS="..."
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rc, err := resolve(*configPath)
	if err != nil {
		return err
	}

	if *asEnv {
		fmt.Println(render.ExportLine(rc))
	} else {
		fmt.Println(render.CMakeArgsString(rc))
	}
	return nil
}
