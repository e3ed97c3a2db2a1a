package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"coursekit/internal/quiz"
)

// runTranscript builds the handler for the transcript command.
func runTranscript(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		tablePath := flags.String("table", "", "Respondus bank table (.csv)")
		outPath := flags.String("out", "", "Transcript path (default: table path with .txt)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr, false); !ok {
			return code
		}
		if strings.TrimSpace(*tablePath) == "" {
			fmt.Fprintln(stderr, "--table is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		file, err := os.Open(*tablePath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open table: %v\n", err)
			return ExitError
		}
		defer file.Close()
		name := strings.TrimSuffix(filepath.Base(*tablePath), filepath.Ext(*tablePath))
		bank, err := quiz.ReadTable(file, name)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read table: %v\n", err)
			return ExitError
		}

		target := *outPath
		if target == "" {
			target = strings.TrimSuffix(*tablePath, filepath.Ext(*tablePath)) + ".txt"
		}
		if err := quiz.WriteTranscriptFile(target, bank); err != nil {
			fmt.Fprintf(stderr, "Failed to write transcript: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %d questions to %s\n", bank.Len(), target)
		return ExitOK
	}
}
