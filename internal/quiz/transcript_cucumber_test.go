package quiz

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestTranscriptFeatures runs the transcript feature scenarios.
func TestTranscriptFeatures(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "transcript.feature")
	suite := godog.TestSuite{
		Name:                "transcript",
		ScenarioInitializer: InitializeTranscriptScenario,
		Options: &godog.Options{
			Format:    "progress",
			Paths:     []string{featurePath},
			Strict:    true,
			Output:    io.Discard,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeTranscriptScenario wires steps for transcript scenarios.
func InitializeTranscriptScenario(ctx *godog.ScenarioContext) {
	state := &transcriptScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a question "([^"]*)" titled "([^"]*)" with choices "([^"]*)" and correct choice (\d+)$`, state.givenQuestion)
	ctx.Step(`^general feedback "([^"]*)"$`, state.givenGeneralFeedback)
	ctx.Step(`^correct feedback "([^"]*)"$`, state.givenCorrectFeedback)
	ctx.Step(`^incorrect feedback "([^"]*)"$`, state.givenIncorrectFeedback)
	ctx.Step(`^(\d+) more questions with (\d+) choices each$`, state.givenMoreQuestions)
	ctx.Step(`^the transcript is rendered$`, state.whenRendered)
	ctx.Step(`^the transcript contains the line "([^"]*)"$`, state.thenContainsLine)
	ctx.Step(`^the transcript does not contain "([^"]*)"$`, state.thenNotContains)
	ctx.Step(`^the transcript is exactly:$`, state.thenExactly)
	ctx.Step(`^the transcript has (\d+) question blocks$`, state.thenBlockCount)
	ctx.Step(`^every block has exactly one choice marked correct$`, state.thenOneCorrectPerBlock)
}

type transcriptScenarioState struct {
	questions []Question
	text      string
}

// reset clears scenario state.
func (s *transcriptScenarioState) reset() {
	s.questions = nil
	s.text = ""
}

// last returns the most recently added question.
func (s *transcriptScenarioState) last() (*Question, error) {
	if len(s.questions) == 0 {
		return nil, fmt.Errorf("no question defined")
	}
	return &s.questions[len(s.questions)-1], nil
}

// givenQuestion adds a one-point multiple-choice question.
func (s *transcriptScenarioState) givenQuestion(wording, title, choices string, correct int) error {
	q := Question{Type: TypeMultipleChoice, Title: title, Points: 1, Wording: wording, CorrectAnswer: correct}
	var list []string
	for _, choice := range strings.Split(choices, ",") {
		list = append(list, strings.TrimSpace(choice))
	}
	if err := q.SetChoices(list); err != nil {
		return err
	}
	s.questions = append(s.questions, q)
	return nil
}

// givenGeneralFeedback sets general feedback on the last question.
func (s *transcriptScenarioState) givenGeneralFeedback(text string) error {
	q, err := s.last()
	if err != nil {
		return err
	}
	q.GeneralFeedback = text
	return nil
}

// givenCorrectFeedback sets correct feedback on the last question.
func (s *transcriptScenarioState) givenCorrectFeedback(text string) error {
	q, err := s.last()
	if err != nil {
		return err
	}
	q.CorrectFeedback = text
	return nil
}

// givenIncorrectFeedback sets incorrect feedback on the last question.
func (s *transcriptScenarioState) givenIncorrectFeedback(text string) error {
	q, err := s.last()
	if err != nil {
		return err
	}
	q.IncorrectFeedback = text
	return nil
}

// givenMoreQuestions appends generated questions.
func (s *transcriptScenarioState) givenMoreQuestions(count, choices int) error {
	for i := 0; i < count; i++ {
		list := make([]string, choices)
		for j := range list {
			list[j] = fmt.Sprintf("option %d", j+1)
		}
		if err := s.givenQuestion(fmt.Sprintf("Generated %d", i+1), "Generated", strings.Join(list, ","), choices); err != nil {
			return err
		}
	}
	return nil
}

// whenRendered builds the bank and renders the transcript.
func (s *transcriptScenarioState) whenRendered() error {
	bank, err := NewBank("scenario", s.questions)
	if err != nil {
		return err
	}
	s.text = FormatTranscript(bank)
	return nil
}

// thenContainsLine asserts a full line is present.
func (s *transcriptScenarioState) thenContainsLine(line string) error {
	for _, candidate := range strings.Split(s.text, "\n") {
		if candidate == line {
			return nil
		}
	}
	return fmt.Errorf("line %q not found in:\n%s", line, s.text)
}

// thenNotContains asserts text is absent.
func (s *transcriptScenarioState) thenNotContains(text string) error {
	if strings.Contains(s.text, text) {
		return fmt.Errorf("unexpected %q in:\n%s", text, s.text)
	}
	return nil
}

// thenExactly compares the whole transcript.
func (s *transcriptScenarioState) thenExactly(doc *godog.DocString) error {
	// Doc strings lose trailing blank lines, so the block terminator is
	// checked separately.
	want := strings.TrimRight(doc.Content, "\n")
	if got := strings.TrimRight(s.text, "\n"); got != want {
		return fmt.Errorf("transcript mismatch:\nwant %q\ngot  %q", want, got)
	}
	if !strings.HasSuffix(s.text, "\n\n") || strings.HasSuffix(s.text, "\n\n\n") {
		return fmt.Errorf("transcript must end with exactly one blank line: %q", s.text)
	}
	return nil
}

// thenBlockCount asserts the number of question headers.
func (s *transcriptScenarioState) thenBlockCount(count int) error {
	if got := strings.Count(s.text, "Points: "); got != count {
		return fmt.Errorf("expected %d blocks, got %d", count, got)
	}
	return nil
}

// thenOneCorrectPerBlock asserts a single starred choice per block.
func (s *transcriptScenarioState) thenOneCorrectPerBlock() error {
	for i, block := range strings.Split(s.text, "Points: ")[1:] {
		starred := 0
		for _, line := range strings.Split(block, "\n") {
			if strings.HasPrefix(line, "*") {
				starred++
			}
		}
		if starred != 1 {
			return fmt.Errorf("block %d has %d correct choices", i+1, starred)
		}
	}
	return nil
}
