package bank

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"coursekit/internal/domain"
	"coursekit/internal/quiz"
	"coursekit/internal/sheet"
)

// UnmatchedPolicy decides what happens to rows whose key has no answer.
type UnmatchedPolicy string

const (
	// UnmatchedError aborts the bank on the first unmatched row.
	UnmatchedError UnmatchedPolicy = "error"
	// UnmatchedSkip drops unmatched rows and reports them.
	UnmatchedSkip UnmatchedPolicy = "skip"
)

// ParseUnmatchedPolicy validates a policy name; empty means error.
func ParseUnmatchedPolicy(value string) (UnmatchedPolicy, error) {
	switch UnmatchedPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", UnmatchedError:
		return UnmatchedError, nil
	case UnmatchedSkip:
		return UnmatchedSkip, nil
	default:
		return "", fmt.Errorf("invalid unmatched policy %q (expected error|skip)", value)
	}
}

// BuildOptions carries the per-run decisions for Build.
type BuildOptions struct {
	Difficulty string
	Unmatched  UnmatchedPolicy
	Rand       *rand.Rand
}

// Skipped records a row dropped under the skip policy.
type Skipped struct {
	Line   int
	Reason string
}

// Report summarizes how input rows were used.
type Report struct {
	Rows     int
	Filtered int
	Skipped  []Skipped
}

// Build maps every selected row of table onto a question and returns a new
// bank. Required columns are checked before any row is read.
func (r Rule) Build(table sheet.Table, opts BuildOptions) (quiz.Bank, Report, error) {
	report := Report{Rows: len(table.Rows)}
	if err := table.Require(r.RequiredColumns()...); err != nil {
		return quiz.Bank{}, report, err
	}
	difficulty, err := r.resolveDifficulty(table, opts.Difficulty)
	if err != nil {
		return quiz.Bank{}, report, err
	}
	policy := opts.Unmatched
	if policy == "" {
		policy = UnmatchedError
	}

	questions := make([]quiz.Question, 0, len(table.Rows))
	for _, row := range table.Rows {
		if !r.selects(row, difficulty) {
			report.Filtered++
			continue
		}
		question, err := r.MapRow(row, difficulty, opts.Rand)
		if err != nil {
			if policy == UnmatchedSkip && domain.HasCode(err, domain.ErrUnmatchedCategory) {
				report.Skipped = append(report.Skipped, Skipped{Line: row.Line, Reason: err.Error()})
				continue
			}
			return quiz.Bank{}, report, fmt.Errorf("line %d: %w", row.Line, err)
		}
		questions = append(questions, question)
	}
	bank, err := quiz.NewBank(r.Name, questions)
	if err != nil {
		return quiz.Bank{}, report, err
	}
	return bank, report, nil
}

// MapRow maps a single input row onto a question.
func (r Rule) MapRow(row sheet.Row, difficulty string, rng *rand.Rand) (quiz.Question, error) {
	if difficulty == "" {
		difficulty = DifficultyAll
	}
	question := quiz.Question{
		Type:    r.Type,
		Title:   r.TitleFor(difficulty),
		Points:  r.Points,
		Wording: r.wording(row),
		Topic:   r.Topic,
	}
	if question.Type == "" {
		question.Type = quiz.TypeMultipleChoice
	}
	if r.FeedbackColumn != "" {
		question.GeneralFeedback = row.Get(r.FeedbackColumn)
	}
	if r.DifficultyColumn != "" {
		question.Difficulty = row.Get(r.DifficultyColumn)
	}

	key := r.key(row)
	slot, err := r.matchChoice(key)
	if err != nil {
		return quiz.Question{}, err
	}

	choices := r.Answer.Choices
	correct := slot
	if r.Answer.Sample > 0 {
		pool := make([]string, len(choices))
		for i, choice := range choices {
			pool[i] = choice.Text
		}
		picked, index, err := quiz.SampleChoices(pool, choices[slot].Text, r.Answer.Sample, rng)
		if err != nil {
			return quiz.Question{}, err
		}
		sampled := make([]Choice, 0, len(picked))
		for _, text := range picked {
			i := slices.IndexFunc(choices, func(c Choice) bool { return c.Text == text })
			sampled = append(sampled, choices[i])
		}
		choices = sampled
		correct = index
	}
	if len(choices) > quiz.MaxChoices {
		return quiz.Question{}, domain.NewInsufficientAnswerPoolError(len(choices), quiz.MaxChoices)
	}
	for i, choice := range choices {
		question.Choices[i] = choice.Text
		question.ChoiceFeedback[i] = choice.Feedback
	}
	question.CorrectAnswer = correct + 1
	if err := question.Validate(); err != nil {
		return quiz.Question{}, err
	}
	return question, nil
}

// matchChoice returns the 0-based choice slot for a key.
func (r Rule) matchChoice(key string) (int, error) {
	normalized := normalizeKey(key)
	// A blank key never falls through to the default choice.
	if strings.Trim(normalized, r.Answer.Separator+" ") == "" {
		return 0, domain.NewUnmatchedCategoryError(strings.Join(r.Answer.Columns, "+"), key)
	}
	for i, choice := range r.Answer.Choices {
		candidates := choice.Match
		if len(candidates) == 0 {
			candidates = []string{choice.Text}
		}
		for _, candidate := range candidates {
			candidate = normalizeKey(candidate)
			if candidate == "" {
				continue
			}
			switch r.Answer.Mode {
			case ModeContains:
				if strings.Contains(normalized, candidate) {
					return i, nil
				}
			default:
				if normalized == candidate {
					return i, nil
				}
			}
		}
	}
	if r.Answer.Default > 0 && r.Answer.Default <= len(r.Answer.Choices) {
		return r.Answer.Default - 1, nil
	}
	return 0, domain.NewUnmatchedCategoryError(strings.Join(r.Answer.Columns, "+"), key)
}

func (r Rule) key(row sheet.Row) string {
	parts := make([]string, 0, len(r.Answer.Columns))
	for _, column := range r.Answer.Columns {
		parts = append(parts, row.Get(column))
	}
	separator := r.Answer.Separator
	if separator == "" {
		separator = " "
	}
	return strings.Join(parts, separator)
}

func (r Rule) wording(row sheet.Row) string {
	var builder strings.Builder
	if r.HTML {
		builder.WriteString("[HTML]")
	}
	builder.WriteString(r.Prompt)
	for _, column := range r.WordingColumns {
		builder.WriteString(row.Get(column))
	}
	if r.HTML {
		builder.WriteString("[/HTML]")
	}
	return builder.String()
}

func (r Rule) selects(row sheet.Row, difficulty string) bool {
	if f := r.Filter; f != nil {
		value := row.Get(f.Column)
		if f.Equals != "" && !strings.EqualFold(value, f.Equals) {
			return false
		}
		if f.Contains != "" && !strings.Contains(strings.ToLower(value), strings.ToLower(f.Contains)) {
			return false
		}
	}
	if difficulty != DifficultyAll && row.Get(r.DifficultyColumn) != difficulty {
		return false
	}
	return true
}

// resolveDifficulty accepts "all" or a level present in the difficulty column.
func (r Rule) resolveDifficulty(table sheet.Table, requested string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested == "" || strings.EqualFold(requested, DifficultyAll) {
		return DifficultyAll, nil
	}
	if r.DifficultyColumn == "" {
		return "", errors.New("bank has no difficulty column; use difficulty \"all\"")
	}
	levels := table.Distinct(r.DifficultyColumn)
	if !slices.Contains(levels, requested) {
		return "", domain.NewUnmatchedCategoryError(r.DifficultyColumn, requested)
	}
	return requested, nil
}

// DifficultyOptions lists "all" followed by the levels present in table.
func (r Rule) DifficultyOptions(table sheet.Table) []string {
	options := []string{DifficultyAll}
	if r.DifficultyColumn == "" {
		return options
	}
	return append(options, table.Distinct(r.DifficultyColumn)...)
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}
