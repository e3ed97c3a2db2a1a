package quiz

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"coursekit/internal/domain"
)

// Column names of the Respondus import table.
const (
	ColumnType              = "Type"
	ColumnTitle             = "Title/ID"
	ColumnPoints            = "Points"
	ColumnWording           = "Question Wording"
	ColumnCorrectAnswer     = "Correct Answer"
	ColumnGeneralFeedback   = "General Feedback"
	ColumnCorrectFeedback   = "Correct Feedback"
	ColumnIncorrectFeedback = "Incorrect Feedback"
	ColumnTopic             = "Topic"
	ColumnDifficulty        = "Difficulty Level"
)

// ChoiceColumn returns the column name of choice slot n (1-based).
func ChoiceColumn(n int) string {
	return "Choice " + strconv.Itoa(n)
}

// FeedbackColumn returns the column name of per-choice feedback n (1-based).
func FeedbackColumn(n int) string {
	return "Feedback " + strconv.Itoa(n)
}

// MetaColumn returns the column name of metadata slot n (1-based).
func MetaColumn(n int) string {
	return "Meta " + strconv.Itoa(n)
}

// Columns returns the fixed Respondus column order.
func Columns() []string {
	columns := []string{ColumnType, ColumnTitle, ColumnPoints, ColumnWording, ColumnCorrectAnswer}
	for i := 1; i <= MaxChoices; i++ {
		columns = append(columns, ChoiceColumn(i))
	}
	columns = append(columns, ColumnGeneralFeedback, ColumnCorrectFeedback, ColumnIncorrectFeedback)
	for i := 1; i <= MaxChoices; i++ {
		columns = append(columns, FeedbackColumn(i))
	}
	columns = append(columns, ColumnTopic, ColumnDifficulty)
	for i := 1; i <= MetaSlots; i++ {
		columns = append(columns, MetaColumn(i))
	}
	return columns
}

// Record renders the question as one table row in Columns order.
func (q Question) Record() []string {
	record := []string{q.Type, q.Title, strconv.Itoa(q.Points), q.Wording, strconv.Itoa(q.CorrectAnswer)}
	record = append(record, q.Choices[:]...)
	record = append(record, q.GeneralFeedback, q.CorrectFeedback, q.IncorrectFeedback)
	record = append(record, q.ChoiceFeedback[:]...)
	record = append(record, q.Topic, q.Difficulty)
	record = append(record, q.Meta[:]...)
	return record
}

// WriteTable writes the bank as a Respondus table CSV with a header row.
func WriteTable(w io.Writer, bank Bank) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns()); err != nil {
		return fmt.Errorf("write table header: %w", err)
	}
	for i, question := range bank.questions {
		if err := writer.Write(question.Record()); err != nil {
			return fmt.Errorf("write question %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}

// WriteTableFile writes the Respondus table to path.
func WriteTableFile(path string, bank Bank) error {
	var builder strings.Builder
	if err := WriteTable(&builder, bank); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// ReadTable parses a Respondus table CSV back into a bank. Only the columns
// up to Correct Answer plus the choice slots are required.
func ReadTable(r io.Reader, name string) (Bank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Bank{}, fmt.Errorf("parse table: empty input")
		}
		return Bank{}, fmt.Errorf("parse table header: %w", err)
	}
	index := map[string]int{}
	for i, column := range header {
		index[strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))] = i
	}
	required := []string{ColumnType, ColumnTitle, ColumnPoints, ColumnWording, ColumnCorrectAnswer, ChoiceColumn(1)}
	var missing []string
	for _, column := range required {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return Bank{}, domain.NewMissingRequiredColumnError(missing)
	}

	var questions []Question
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Bank{}, fmt.Errorf("parse table: %w", err)
		}
		line, _ := reader.FieldPos(0)
		cell := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		question, err := questionFromCells(cell)
		if err != nil {
			return Bank{}, fmt.Errorf("line %d: %w", line, err)
		}
		questions = append(questions, question)
	}
	return NewBank(name, questions)
}

func questionFromCells(cell func(string) string) (Question, error) {
	question := Question{
		Type:              cell(ColumnType),
		Title:             cell(ColumnTitle),
		Wording:           cell(ColumnWording),
		GeneralFeedback:   cell(ColumnGeneralFeedback),
		CorrectFeedback:   cell(ColumnCorrectFeedback),
		IncorrectFeedback: cell(ColumnIncorrectFeedback),
		Topic:             cell(ColumnTopic),
		Difficulty:        cell(ColumnDifficulty),
	}
	points, err := parseWholeNumber(cell(ColumnPoints))
	if err != nil {
		return Question{}, fmt.Errorf("%s: %w", ColumnPoints, err)
	}
	question.Points = points
	correct, err := parseWholeNumber(cell(ColumnCorrectAnswer))
	if err != nil {
		return Question{}, fmt.Errorf("%s: %w", ColumnCorrectAnswer, err)
	}
	question.CorrectAnswer = correct
	for i := 1; i <= MaxChoices; i++ {
		question.Choices[i-1] = cell(ChoiceColumn(i))
		question.ChoiceFeedback[i-1] = cell(FeedbackColumn(i))
	}
	for i := 1; i <= MetaSlots; i++ {
		question.Meta[i-1] = cell(MetaColumn(i))
	}
	return question, nil
}

// parseWholeNumber accepts "2" and spreadsheet-style "2.0".
func parseWholeNumber(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("is required")
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid whole number %q", value)
	}
	return int(f), nil
}
