package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lqcdutils/sigmondcfg/render"
)

// RunShow prints the resolved configuration and the derived CMake
// arguments.
func RunShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	configPath := fs.String("config", "", "Config file to load (default: auto-detect)")
	fs.StringVar(configPath, "c", "", "Config file to load (shorthand)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg show [flags]

Show the resolved build configuration and derived CMake arguments.

Flags:
  -c, --config    Config file to load (default: auto-detect)
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rc, err := resolve(*configPath)
	if err != nil {
		return err
	}

	fmt.Println("Current Sigmond Configuration:")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Skip query executable: %v\n", rc.SkipQuery())
	fmt.Printf("Skip batch executable: %v\n", rc.SkipBatch())
	fmt.Printf("Precision: %s\n", rc.Precision())
	fmt.Printf("Numbers type: %s\n", rc.Numbers())
	fmt.Printf("Default file format: %s\n", rc.FileFormat())
	fmt.Printf("Testing enabled: %v\n", rc.TestingEnabled())
	fmt.Printf("Verbose build: %v\n", rc.Verbose())
	fmt.Printf("Build jobs: %d\n", rc.BuildJobs())

	if enabled := rc.EnabledOptionalLibraries(); len(enabled) > 0 {
		fmt.Printf("Enabled optional libraries: %s\n", strings.Join(enabled, ", "))
	} else {
		fmt.Println("Enabled optional libraries: none")
	}

	if flags := rc.ExtraCXXFlags(); len(flags) > 0 {
		fmt.Printf("Extra C++ flags: %s\n", strings.Join(flags, " "))
	}

	fmt.Println("\nCMake arguments:")
	for _, arg := range render.CMakeArgs(rc) {
		fmt.Printf("  %s\n", arg)
	}

	return nil
}
