// sigmondcfg - Sigmond build configuration tool
package main

import (
	"fmt"
	"os"

	"github.com/lqcdutils/sigmondcfg/cli"
)

// Command represents a registered CLI command.
type Command struct {
	Name  string
	Short string
	Run   func(args []string) error
}

var commands = []*Command{
	{Name: "show", Short: "Show the resolved configuration and derived flags", Run: cli.RunShow},
	{Name: "create", Short: "Create a new sigmond.toml configuration file", Run: cli.RunCreate},
	{Name: "validate", Short: "Validate the configuration file", Run: cli.RunValidate},
	{Name: "generate-presets", Short: "Generate CMakeUserPresets.json from config", Run: cli.RunGeneratePresets},
	{Name: "cmake-args", Short: "Print -D CMake args derived from sigmond.toml/env", Run: cli.RunCMakeArgs},
	{Name: "write-cache", Short: "Write a CMake init cache from sigmond.toml/env", Run: cli.RunWriteCache},
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage()
		if len(args) == 0 {
			return fmt.Errorf("no command given")
		}
		return nil
	}

	for _, cmd := range commands {
		if cmd.Name == args[0] {
			return cmd.Run(args[1:])
		}
	}
	return fmt.Errorf("unknown command: %s\n\nRun 'sigmondcfg --help' for usage", args[0])
}

func printUsage() {
	fmt.Print("sigmondcfg - Sigmond build configuration tool\n\n")
	fmt.Print("Usage:\n")
	fmt.Print("  sigmondcfg <command> [flags]\n\n")
	fmt.Print("Commands:\n")
	for _, cmd := range commands {
		fmt.Printf("  %-18s %s\n", cmd.Name, cmd.Short)
	}
	fmt.Print(`
Examples:
  # Create a starter config and inspect the result
  sigmondcfg create
  sigmondcfg show

  # Validate a specific file
  sigmondcfg validate myconfig.toml

  # Print CMake arguments for the current configuration
  sigmondcfg cmake-args
  sigmondcfg cmake-args --as-env

  # Generate build-system inputs
  sigmondcfg generate-presets -o CMakeUserPresets.json
  sigmondcfg write-cache -o _sigmond_cache_init.cmake

Run 'sigmondcfg <command> --help' for more information on a command.
`)
}
