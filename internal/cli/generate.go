package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"coursekit/internal/bank"
	"coursekit/internal/config"
	"coursekit/internal/runner"
	"coursekit/internal/sheet"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		bankName := flags.String("bank", "", "Bank type (see \"coursekit banks\")")
		inputPath := flags.String("input", "", "Spreadsheet export (.csv)")
		difficulty := flags.String("difficulty", "", "Difficulty level or \"all\" (prompts when omitted)")
		outDir := flags.String("out", "", "Output directory (default: output_dir or the input's directory)")
		unmatched := flags.String("unmatched", "", "Unmatched row policy: error|skip (default: config)")
		seed := flags.Uint64("seed", 0, "Seed for distractor sampling")
		configPath := flags.String("config", "", "Path to config file (default: search for .coursekit/config.yml)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr, false); !ok {
			return code
		}
		if strings.TrimSpace(*bankName) == "" || strings.TrimSpace(*inputPath) == "" {
			fmt.Fprintln(stderr, "--bank and --input are required")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		seedSet := false
		flags.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				seedSet = true
			}
		})

		cfg, configFile, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		policyName := *unmatched
		if policyName == "" {
			policyName = cfg.Unmatched
		}
		policy, err := bank.ParseUnmatchedPolicy(policyName)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		log, _, err := newCommandLogger(cfg.Log, stderr, cmd.Name)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to set up logging: %v\n", err)
			return ExitError
		}
		defer func() { _ = log.Sync() }()

		registry, err := cfg.Registry()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load banks: %v\n", err)
			return ExitError
		}
		rule, err := registry.Lookup(*bankName)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitError
		}
		table, err := sheet.ReadFile(*inputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read input: %v\n", err)
			return ExitError
		}

		level := strings.TrimSpace(*difficulty)
		if level == "" {
			options := rule.DifficultyOptions(table)
			fmt.Fprintf(stdout, "Difficulty levels: %s\n", strings.Join(options, ", "))
			level, err = promptString(newPromptReader(), stdout, "Difficulty", bank.DifficultyAll)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to read difficulty: %v\n", err)
				return ExitError
			}
		}

		var rng *rand.Rand
		if seedSet {
			rng = rand.New(rand.NewPCG(*seed, *seed))
		}
		result, err := runner.Generate(runner.GenerateRequest{
			Rule:      rule,
			Table:     table,
			InputPath: *inputPath,
			OutputDir: resolveOutputDir(*outDir, cfg.OutputDir, configFile),
			Options: bank.BuildOptions{
				Difficulty: level,
				Unmatched:  policy,
				Rand:       rng,
			},
		})
		if err != nil {
			log.Error("bank failed", zap.String("bank", rule.Name), zap.String("input", *inputPath), zap.Error(err))
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}

		for _, skipped := range result.Report.Skipped {
			log.Warn("row skipped", zap.Int("line", skipped.Line), zap.String("reason", skipped.Reason))
		}
		log.Info("bank written",
			zap.String("bank", rule.Name),
			zap.String("difficulty", level),
			zap.Int("questions", result.Bank.Len()),
			zap.Int("filtered", result.Report.Filtered),
			zap.Int("skipped", len(result.Report.Skipped)),
		)
		fmt.Fprintf(stdout, "Wrote %d questions\n", result.Bank.Len())
		fmt.Fprintf(stdout, "Table: %s\n", result.TablePath)
		fmt.Fprintf(stdout, "Transcript: %s\n", result.TranscriptPath)
		return ExitOK
	}
}

// resolveOutputDir prefers the flag, then output_dir relative to the project root.
func resolveOutputDir(flagValue, configured, configFile string) string {
	if flagValue != "" {
		return flagValue
	}
	if configured == "" || filepath.IsAbs(configured) || configFile == "" {
		return configured
	}
	return filepath.Join(config.ProjectRootFromConfigPath(configFile), configured)
}
