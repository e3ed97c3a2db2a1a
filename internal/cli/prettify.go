package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"coursekit/internal/page"
	"coursekit/internal/runner"
	"coursekit/internal/ui/live"
)

// runPrettify builds the handler for the prettify command.
func runPrettify(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		headerMode := flags.String("header", "ask", "Promote first table rows to headers: ask|yes|no")
		dedupe := flags.Bool("dedupe-ids", false, "Suffix duplicate section ids instead of failing")
		uiMode := flags.String("ui", "auto", "Progress output: auto|live|plain")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		verbose := flags.Bool("verbose", false, "Log every file at debug level; disables the live UI")
		configPath := flags.String("config", "", "Path to config file (default: search for .coursekit/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr, true); !ok {
			return code
		}
		files := flags.Args()
		if len(files) == 0 {
			fmt.Fprintln(stderr, "at least one file is required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		mode := strings.ToLower(strings.TrimSpace(*headerMode))
		decider, err := headerDecider(mode, newPromptReader(), stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, uiModeInputs{verbose: *verbose, prompting: mode == "ask" || mode == ""}, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *verbose {
			cfg.Log.Level = "debug"
		}
		log, runID, err := newCommandLogger(cfg.Log, stderr, cmd.Name)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = log.Sync() }()

		observers := runner.MultiObserver{runner.LogObserver{Logger: log}}
		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			observers = append(observers, controller)
		}

		job := runner.PrettifyJob(runner.PrettifyRequest{
			Options: cfg.PageOptions(*dedupe),
			Decider: decider,
			Suffix:  cfg.Page.OutputSuffix,
		})
		results := runner.RunBatch(context.Background(), runID, files, job, observers)
		if controller != nil {
			controller.Wait()
		} else {
			printBatchSummary(stdout, results, *noColor)
		}

		if results.Failed() > 0 {
			return ExitError
		}
		return ExitOK
	}
}

// headerDecider maps the --header mode onto a page.HeaderDecider.
func headerDecider(mode string, reader *bufio.Reader, out io.Writer) (page.HeaderDecider, error) {
	switch mode {
	case "yes":
		return page.FixedHeader(true), nil
	case "no":
		return page.FixedHeader(false), nil
	case "", "ask":
		return page.HeaderDeciderFunc(func(preview page.TablePreview) (bool, error) {
			fmt.Fprintf(out, "Table %d first row: %s\n", preview.Ordinal, preview.Text())
			return promptYesNo(reader, out, "Use the first row as the header?", true)
		}), nil
	default:
		return nil, fmt.Errorf("invalid header mode %q (expected ask|yes|no)", mode)
	}
}
