package quiz

import (
	"fmt"
	"strings"

	"coursekit/internal/domain"
)

// MaxChoices is the number of choice slots in a Respondus question.
const MaxChoices = 10

// MetaSlots is the number of free-form metadata columns.
const MetaSlots = 4

// TypeMultipleChoice is the Respondus tag for multiple-choice questions.
const TypeMultipleChoice = "MC"

// Question is one Respondus question record.
type Question struct {
	Type              string
	Title             string
	Points            int
	Wording           string
	CorrectAnswer     int
	Choices           [MaxChoices]string
	GeneralFeedback   string
	CorrectFeedback   string
	IncorrectFeedback string
	ChoiceFeedback    [MaxChoices]string
	Topic             string
	Difficulty        string
	Meta              [MetaSlots]string
}

// SetChoices fills choice slots in order, replacing any previous choices.
func (q *Question) SetChoices(choices []string) error {
	if len(choices) > MaxChoices {
		return fmt.Errorf("too many choices: %d (max %d)", len(choices), MaxChoices)
	}
	q.Choices = [MaxChoices]string{}
	copy(q.Choices[:], choices)
	return nil
}

// ChoiceCount returns the number of non-empty choice slots.
func (q Question) ChoiceCount() int {
	count := 0
	for _, choice := range q.Choices {
		if strings.TrimSpace(choice) != "" {
			count++
		}
	}
	return count
}

// Validate checks that the correct answer references a non-empty slot.
func (q Question) Validate() error {
	if q.CorrectAnswer < 1 || q.CorrectAnswer > MaxChoices {
		return domain.NewInvalidCorrectAnswerError(q.CorrectAnswer)
	}
	if strings.TrimSpace(q.Choices[q.CorrectAnswer-1]) == "" {
		return domain.NewInvalidCorrectAnswerError(q.CorrectAnswer)
	}
	return nil
}

// Bank is an ordered, validated set of questions. It is not modified after
// NewBank returns.
type Bank struct {
	name      string
	questions []Question
}

// NewBank validates every question and copies them into a new Bank.
func NewBank(name string, questions []Question) (Bank, error) {
	copied := make([]Question, len(questions))
	for i, question := range questions {
		if err := question.Validate(); err != nil {
			return Bank{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		copied[i] = question
	}
	return Bank{name: name, questions: copied}, nil
}

// Name returns the bank name.
func (b Bank) Name() string {
	return b.name
}

// Len returns the number of questions.
func (b Bank) Len() int {
	return len(b.questions)
}

// Question returns a copy of the question at position i.
func (b Bank) Question(i int) Question {
	return b.questions[i]
}

// Questions returns a copy of every question in order.
func (b Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}
