package bank

import (
	"fmt"
	"strings"

	"coursekit/internal/quiz"
)

// Answer key modes.
const (
	// ModeMatch selects the choice whose match value equals the key.
	ModeMatch = "match"
	// ModeContains selects the first choice whose match value is a substring of the key.
	ModeContains = "contains"
)

// DifficultyAll disables difficulty filtering.
const DifficultyAll = "all"

// DifficultyPlaceholder is replaced in titles with the selected level.
const DifficultyPlaceholder = "{difficulty}"

// Rule describes how one bank type maps input rows onto questions.
type Rule struct {
	Name             string     `yaml:"name"`
	Title            string     `yaml:"title"`
	Type             string     `yaml:"type,omitempty"`
	Points           int        `yaml:"points,omitempty"`
	Prompt           string     `yaml:"prompt"`
	HTML             bool       `yaml:"html"`
	WordingColumns   []string   `yaml:"wording_columns"`
	FeedbackColumn   string     `yaml:"feedback_column,omitempty"`
	DifficultyColumn string     `yaml:"difficulty_column,omitempty"`
	Topic            string     `yaml:"topic,omitempty"`
	Filter           *Filter    `yaml:"filter,omitempty"`
	Output           string     `yaml:"output,omitempty"`
	Answer           AnswerRule `yaml:"answer"`
}

// Filter restricts the rows a bank uses.
type Filter struct {
	Column   string `yaml:"column"`
	Contains string `yaml:"contains,omitempty"`
	Equals   string `yaml:"equals,omitempty"`
}

// AnswerRule derives the correct choice from key columns.
type AnswerRule struct {
	Mode      string   `yaml:"mode,omitempty"`
	Columns   []string `yaml:"columns"`
	Separator string   `yaml:"separator,omitempty"`
	Default   int      `yaml:"default,omitempty"`
	Sample    int      `yaml:"sample,omitempty"`
	Choices   []Choice `yaml:"choices"`
}

// Choice is one answer option and the key values that select it.
type Choice struct {
	Text     string   `yaml:"text"`
	Match    []string `yaml:"match,omitempty"`
	Feedback string   `yaml:"feedback,omitempty"`
}

// Normalize fills defaults and trims names.
func (r *Rule) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if strings.TrimSpace(r.Type) == "" {
		r.Type = quiz.TypeMultipleChoice
	}
	if r.Points == 0 {
		r.Points = 1
	}
	if strings.TrimSpace(r.Output) == "" && r.Name != "" {
		r.Output = "Respondus_" + r.Name
	}
	if strings.TrimSpace(r.Answer.Mode) == "" {
		r.Answer.Mode = ModeMatch
	}
	if r.Answer.Separator == "" {
		r.Answer.Separator = " "
	}
}

// Check reports rule problems through add, using prefix for field names.
func (r Rule) Check(prefix string, add func(field, message string)) {
	if r.Name == "" {
		add(prefix+".name", "is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		add(prefix+".title", "is required")
	}
	if r.Points < 0 {
		add(prefix+".points", "must be >= 0")
	}
	if strings.TrimSpace(r.Prompt) == "" && len(r.WordingColumns) == 0 {
		add(prefix+".wording_columns", "prompt or at least one wording column is required")
	}
	if strings.ContainsAny(r.Output, `/\`) {
		add(prefix+".output", "must be a file name, not a path")
	}
	if r.Filter != nil {
		if strings.TrimSpace(r.Filter.Column) == "" {
			add(prefix+".filter.column", "is required")
		}
		if r.Filter.Contains == "" && r.Filter.Equals == "" {
			add(prefix+".filter", "contains or equals is required")
		}
	}

	answer := r.Answer
	switch answer.Mode {
	case ModeMatch, ModeContains:
	default:
		add(prefix+".answer.mode", fmt.Sprintf("unsupported mode %q (expected match|contains)", answer.Mode))
	}
	if len(answer.Columns) == 0 {
		add(prefix+".answer.columns", "must include at least one entry")
	}
	if len(answer.Choices) == 0 {
		add(prefix+".answer.choices", "must include at least one entry")
	}
	if answer.Sample == 0 && len(answer.Choices) > quiz.MaxChoices {
		add(prefix+".answer.choices", fmt.Sprintf("at most %d choices fit a question; set answer.sample", quiz.MaxChoices))
	}
	if answer.Sample < 0 || answer.Sample > quiz.MaxChoices {
		add(prefix+".answer.sample", fmt.Sprintf("must be between 0 and %d", quiz.MaxChoices))
	} else if answer.Sample > len(answer.Choices) {
		add(prefix+".answer.sample", fmt.Sprintf("exceeds the %d available choices", len(answer.Choices)))
	}
	if answer.Default < 0 || answer.Default > len(answer.Choices) {
		add(prefix+".answer.default", fmt.Sprintf("must reference one of the %d choices", len(answer.Choices)))
	}
	seen := map[string]struct{}{}
	for i, choice := range answer.Choices {
		text := strings.TrimSpace(choice.Text)
		field := fmt.Sprintf("%s.answer.choices[%d].text", prefix, i)
		if text == "" {
			add(field, "is required")
			continue
		}
		if _, ok := seen[text]; ok {
			add(field, fmt.Sprintf("duplicate choice %q", text))
		}
		seen[text] = struct{}{}
	}
}

// RequiredColumns lists every input column the rule reads.
func (r Rule) RequiredColumns() []string {
	var columns []string
	add := func(column string) {
		column = strings.TrimSpace(column)
		if column == "" {
			return
		}
		for _, existing := range columns {
			if existing == column {
				return
			}
		}
		columns = append(columns, column)
	}
	for _, column := range r.Answer.Columns {
		add(column)
	}
	for _, column := range r.WordingColumns {
		add(column)
	}
	add(r.FeedbackColumn)
	add(r.DifficultyColumn)
	if r.Filter != nil {
		add(r.Filter.Column)
	}
	return columns
}

// TitleFor renders the title for a difficulty level.
func (r Rule) TitleFor(difficulty string) string {
	return strings.ReplaceAll(r.Title, DifficultyPlaceholder, difficulty)
}
