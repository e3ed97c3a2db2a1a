package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// parseFlags parses args and reports the exit code to return on failure.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer, allowArgs bool) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if !allowArgs && flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
