package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"coursekit/internal/bank"
	"coursekit/internal/quiz"
	"coursekit/internal/sheet"
)

// GenerateRequest describes one question bank run.
type GenerateRequest struct {
	Rule      bank.Rule
	Table     sheet.Table
	InputPath string
	// OutputDir defaults to the input's directory.
	OutputDir string
	Options   bank.BuildOptions
}

// GenerateResult lists the files written for a bank.
type GenerateResult struct {
	Bank           quiz.Bank
	Report         bank.Report
	TablePath      string
	TranscriptPath string
}

// Generate builds a bank from the request's table and writes the Respondus
// table and transcript. Nothing is left behind when the bank fails to build
// or either file cannot be written.
func Generate(req GenerateRequest) (GenerateResult, error) {
	built, report, err := req.Rule.Build(req.Table, req.Options)
	if err != nil {
		return GenerateResult{Report: report}, fmt.Errorf("build %s: %w", req.Rule.Name, err)
	}

	dir := req.OutputDir
	if dir == "" {
		dir = filepath.Dir(req.InputPath)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return GenerateResult{}, fmt.Errorf("create output dir: %w", err)
	}
	result := GenerateResult{
		Bank:           built,
		Report:         report,
		TablePath:      filepath.Join(dir, req.Rule.Output+".csv"),
		TranscriptPath: filepath.Join(dir, req.Rule.Output+".txt"),
	}
	if err := quiz.WriteTableFile(result.TablePath, built); err != nil {
		return GenerateResult{}, err
	}
	if err := quiz.WriteTranscriptFile(result.TranscriptPath, built); err != nil {
		if removeErr := os.Remove(result.TablePath); removeErr != nil {
			return GenerateResult{}, errors.Join(err, fmt.Errorf("remove partial table: %w", removeErr))
		}
		return GenerateResult{}, err
	}
	return result, nil
}
