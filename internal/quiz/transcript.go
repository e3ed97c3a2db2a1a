package quiz

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// choiceLetters labels choices in transcript order.
const choiceLetters = "abcdefghij"

// Feedback resolves the transcript feedback lines for a question. General
// feedback seeds both lines; explicit correct or incorrect feedback replaces
// its own line.
func (q Question) Feedback() (correct, incorrect string) {
	if q.GeneralFeedback != "" {
		correct = q.GeneralFeedback
		incorrect = q.GeneralFeedback
	}
	if q.CorrectFeedback != "" {
		correct = q.CorrectFeedback
	}
	if q.IncorrectFeedback != "" {
		incorrect = q.IncorrectFeedback
	}
	return correct, incorrect
}

// FormatTranscript renders the bank in the Respondus plain-text import
// format. The output is consumed byte for byte by the import tool.
func FormatTranscript(bank Bank) string {
	var builder strings.Builder
	for i, question := range bank.questions {
		writeBlock(&builder, i+1, question)
	}
	return builder.String()
}

// WriteTranscript writes the Respondus transcript to w.
func WriteTranscript(w io.Writer, bank Bank) error {
	if _, err := io.WriteString(w, FormatTranscript(bank)); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// WriteTranscriptFile writes the Respondus transcript to path as UTF-8.
func WriteTranscriptFile(path string, bank Bank) error {
	if err := os.WriteFile(path, []byte(FormatTranscript(bank)), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func writeBlock(builder *strings.Builder, number int, question Question) {
	builder.WriteString("Points: " + strconv.Itoa(question.Points) + "\n\n")
	builder.WriteString("Title: " + question.Title + "\n")
	builder.WriteString(strconv.Itoa(number) + ") " + question.Wording + "\n\n")

	correct, incorrect := question.Feedback()
	if correct != "" {
		builder.WriteString("~ " + correct + "\n")
	}
	if incorrect != "" {
		builder.WriteString("@ " + incorrect + "\n")
	}
	if correct != "" || incorrect != "" {
		builder.WriteString("\n")
	}

	letter := 0
	for slot, choice := range question.Choices {
		if strings.TrimSpace(choice) == "" {
			continue
		}
		if slot+1 == question.CorrectAnswer {
			builder.WriteString("*")
		}
		builder.WriteString(choiceLetters[letter:letter+1] + ") " + choice + "\n")
		letter++
	}
	builder.WriteString("\n")
}
