package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// runBanks builds the handler for the banks command.
func runBanks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		registry, err := cfg.Registry()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load banks: %v\n", err)
			return ExitError
		}
		for _, rule := range registry.Rules() {
			fmt.Fprintf(stdout, "%s\n", rule.Name)
			fmt.Fprintf(stdout, "  title:   %s\n", rule.Title)
			fmt.Fprintf(stdout, "  output:  %s.csv, %s.txt\n", rule.Output, rule.Output)
			fmt.Fprintf(stdout, "  columns: %s\n", strings.Join(rule.RequiredColumns(), ", "))
		}
		return ExitOK
	}
}
