package cli

import (
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .coursekit/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr, false); !ok {
			return code
		}

		cfg, resolved, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		if _, err := cfg.Registry(); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		if resolved == "" {
			fmt.Fprintln(stdout, "No config found; built-in defaults OK")
			return ExitOK
		}
		fmt.Fprintf(stdout, "Config OK: %s\n", resolved)
		return ExitOK
	}
}
