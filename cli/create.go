package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/lqcdutils/sigmondcfg/config"
)

// ConfirmFunc asks the user whether an existing file may be overwritten.
// It is a variable so tests and non-interactive callers can replace the
// interactive prompt.
var ConfirmFunc = func(path string) (bool, error) {
	overwrite := false
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("File %s already exists. Overwrite?", path)).
		Affirmative("Overwrite").
		Negative("Abort").
		Value(&overwrite)
	if err := confirm.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// RunCreate writes a new configuration file, prompting before
// overwriting an existing one.
func RunCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	output := fs.String("output", config.ConfigFileName, "Output file path")
	fs.StringVar(output, "o", config.ConfigFileName, "Output file path (shorthand)")
	template := fs.String("template", "", "Copy an existing file as the template instead of the minimal config")
	force := fs.Bool("force", false, "Overwrite an existing file without prompting")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: sigmondcfg create [flags]

Create a new sigmond.toml configuration file.

Flags:
  -o, --output      Output file path (default: sigmond.toml)
      --template    Copy an existing file as the template
      --force       Overwrite an existing file without prompting
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*output); err == nil && !*force {
		ok, err := ConfirmFunc(*output)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	content := []byte(minimalConfig)
	if *template != "" {
		data, err := os.ReadFile(*template)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", *template, err)
		}
		content = data
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(*output, content, 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", *output, err)
	}

	fmt.Printf("Created configuration file: %s\n", *output)
	return nil
}
