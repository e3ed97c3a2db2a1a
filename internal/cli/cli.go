package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  coursekit <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"coursekit <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .coursekit/config.yml with the built-in banks", []string{
		"coursekit init [--config <path>]",
	}, runInit),
	command("validate", "Validate .coursekit/config.yml", []string{
		"coursekit validate [--config <path>]",
	}, runValidate),
	command("banks", "List question bank types and their input columns", []string{
		"coursekit banks [--config <path>]",
	}, runBanks),
	command("generate", "Build a Respondus question bank from a spreadsheet", []string{
		"coursekit generate --bank <name> --input <csv> [--difficulty <level>]",
		"    [--out <dir>] [--unmatched error|skip] [--seed <n>] [--config <path>]",
	}, runGenerate),
	command("transcript", "Write the Respondus transcript for a bank table", []string{
		"coursekit transcript --table <respondus.csv> [--out <txt>]",
	}, runTranscript),
	command("prettify", "Turn exported course pages into tabbed pages", []string{
		"coursekit prettify [--header ask|yes|no] [--dedupe-ids] [--ui auto|live|plain]",
		"    [--no-color] [--verbose] [--config <path>] <file>...",
	}, runPrettify),
}
