package cli

import (
	"flag"
	"fmt"
	"os"
)

// RunValidate resolves the configuration and reports success or failure.
// Validation failures list every violation at once.
func RunValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg validate [config-file]

Run resolution and report whether the configuration is valid.
With no argument the config file is auto-detected.
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	configPath := ""
	if fs.NArg() > 0 {
		configPath = fs.Arg(0)
	}

	if _, err := resolve(configPath); err != nil {
		return err
	}

	fmt.Println("Configuration is valid")
	return nil
}
