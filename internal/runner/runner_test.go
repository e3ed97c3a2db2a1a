package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"coursekit/internal/bank"
	"coursekit/internal/page"
	"coursekit/internal/sheet"
	"coursekit/internal/testutil"
)

type recordingObserver struct {
	started bool
	events  []FileEvent
	results Results
}

func (r *recordingObserver) OnBatchStart(string, []string) { r.started = true }
func (r *recordingObserver) OnFileEvent(event FileEvent)   { r.events = append(r.events, event) }
func (r *recordingObserver) OnBatchEnd(results Results)    { r.results = results }

// TestRunBatchContinuesAfterFailure verifies one failing file does not stop the batch.
func TestRunBatchContinuesAfterFailure(t *testing.T) {
	var seen []string
	job := func(_ context.Context, path string) (FileOutcome, error) {
		seen = append(seen, path)
		if path == "bad" {
			return FileOutcome{}, errors.New("boom")
		}
		return FileOutcome{Output: path + ".out", Sections: 2}, nil
	}
	recorder := &recordingObserver{}

	results := RunBatch(context.Background(), "run-1", []string{"a", "bad", "c"}, job, recorder)

	if strings.Join(seen, ",") != "a,bad,c" {
		t.Fatalf("expected sequential processing of every file, got %v", seen)
	}
	if results.Failed() != 1 || results.Succeeded() != 2 {
		t.Fatalf("unexpected counts failed=%d succeeded=%d", results.Failed(), results.Succeeded())
	}
	if !recorder.started || recorder.results.RunID != "run-1" {
		t.Fatalf("expected start and end notifications")
	}
	var terminal []FileEventType
	for _, event := range recorder.events {
		if event.Type == FileDone || event.Type == FileFailed {
			terminal = append(terminal, event.Type)
		}
	}
	if len(terminal) != 3 || terminal[1] != FileFailed {
		t.Fatalf("unexpected terminal events %v", terminal)
	}
}

// TestRunBatchStopsWorkAfterCancel verifies cancelled batches fail remaining files.
func TestRunBatchStopsWorkAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	job := func(context.Context, string) (FileOutcome, error) {
		calls++
		cancel()
		return FileOutcome{}, nil
	}
	results := RunBatch(ctx, "run-2", []string{"a", "b"}, job, nil)
	if calls != 1 {
		t.Fatalf("expected one job call, got %d", calls)
	}
	if !errors.Is(results.Files[1].Err, context.Canceled) {
		t.Fatalf("expected cancellation error, got %v", results.Files[1].Err)
	}
}

// TestPrettifyJobWritesEachFileIndependently verifies a malformed file leaves others intact.
func TestPrettifyJobWritesEachFileIndependently(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.html", "<h1>A. One</h1>\n<p>x</p>\n")
	bad := testutil.WriteFile(t, dir, "bad.html", "<h1>A. One</h1>\n<table>\n")

	job := PrettifyJob(PrettifyRequest{Options: page.DefaultOptions(), Decider: page.FixedHeader(false), Suffix: "_prettified.txt"})
	results := RunBatch(testutil.Context(t, 0), "run-3", []string{bad, good}, job, nil)

	if results.Failed() != 1 {
		t.Fatalf("expected one failure, got %d", results.Failed())
	}
	data, err := os.ReadFile(filepath.Join(dir, "good_prettified.txt"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `<div id="tab-A">`) {
		t.Fatalf("unexpected output:\n%s", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "bad_prettified.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected no output for malformed file, got %v", err)
	}
}

// TestGenerateWritesTableAndTranscript verifies both outputs land next to the input.
func TestGenerateWritesTableAndTranscript(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "models.csv", "Type,Difficulty,Embed,Description\nmineral,easy,<model/>,desc\n")
	table, err := sheet.ReadFile(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	rule := bank.DefaultRules()[0]

	result, err := Generate(GenerateRequest{Rule: rule, Table: table, InputPath: input})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if result.TablePath != filepath.Join(dir, "Respondus_RockOrMineral.csv") {
		t.Fatalf("unexpected table path %q", result.TablePath)
	}
	transcript, err := os.ReadFile(result.TranscriptPath)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	want := "Points: 1\n\nTitle: Rock or mineral? Level all\n1) [HTML]<p>Is this a rock or a mineral?</p><model/>[/HTML]\n\n~ desc\n@ desc\n\na) rock\n*b) mineral\n\n"
	if string(transcript) != want {
		t.Fatalf("unexpected transcript:\n%q", transcript)
	}
	if _, err := os.Stat(result.TablePath); err != nil {
		t.Fatalf("expected table file: %v", err)
	}
}

// TestGenerateRemovesTableWhenTranscriptFails verifies outputs appear together or not at all.
func TestGenerateRemovesTableWhenTranscriptFails(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "models.csv", "Type,Difficulty,Embed,Description\nmineral,easy,<model/>,desc\n")
	table, err := sheet.ReadFile(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	rule := bank.DefaultRules()[0]
	if err := os.Mkdir(filepath.Join(dir, rule.Output+".txt"), 0o755); err != nil {
		t.Fatalf("block transcript path: %v", err)
	}

	if _, err := Generate(GenerateRequest{Rule: rule, Table: table, InputPath: input}); err == nil {
		t.Fatalf("expected transcript write error")
	}
	if _, err := os.Stat(filepath.Join(dir, rule.Output+".csv")); !os.IsNotExist(err) {
		t.Fatalf("expected no table after failed transcript, got %v", err)
	}
}

// TestPrettifyJobRefusesToOverwriteInput verifies a suffix equal to the extension fails the file.
func TestPrettifyJobRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	original := "<h1>A. One</h1>\n<p>x</p>\n"
	input := testutil.WriteFile(t, dir, "page.html", original)

	job := PrettifyJob(PrettifyRequest{Options: page.DefaultOptions(), Decider: page.FixedHeader(false), Suffix: ".html"})
	results := RunBatch(testutil.Context(t, 0), "run-4", []string{input}, job, nil)

	if results.Failed() != 1 {
		t.Fatalf("expected the file to fail, got %d failures", results.Failed())
	}
	if err := results.Files[0].Err; err == nil || !strings.Contains(err.Error(), "overwrite") {
		t.Fatalf("expected overwrite error, got %v", err)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		t.Fatalf("read input: %v", err)
	}
	if string(data) != original {
		t.Fatalf("input was modified:\n%s", data)
	}
}

// TestLogObserverRecordsOutcomes verifies structured batch logging.
func TestLogObserverRecordsOutcomes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := LogObserver{Logger: zap.New(core)}
	job := func(_ context.Context, path string) (FileOutcome, error) {
		if path == "bad" {
			return FileOutcome{}, errors.New("boom")
		}
		return FileOutcome{Output: "out"}, nil
	}
	RunBatch(context.Background(), "run-4", []string{"ok", "bad"}, job, log)

	if logs.FilterMessage("file written").Len() != 1 {
		t.Fatalf("expected one written entry")
	}
	failed := logs.FilterMessage("file failed").All()
	if len(failed) != 1 || failed[0].ContextMap()["error"] != "boom" {
		t.Fatalf("unexpected failure entries %+v", failed)
	}
	end := logs.FilterMessage("batch finished").All()
	if len(end) != 1 || end[0].ContextMap()["failed"] != int64(1) {
		t.Fatalf("unexpected batch summary %+v", end)
	}
}
