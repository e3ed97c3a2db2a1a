package quiz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTranscriptExactBytes(t *testing.T) {
	first := mcQuestion("Rock or mineral? Level easy", "[HTML]<p>Is this a rock or a mineral?</p><m/>[/HTML]", 2, "rock", "mineral")
	first.GeneralFeedback = "Quartz is a mineral."
	second := mcQuestion("Rock or mineral? Level easy", "Second", 1, "rock", "mineral")
	bank, err := NewBank("RockOrMineral", []Question{first, second})
	require.NoError(t, err)

	want := "Points: 1\n\n" +
		"Title: Rock or mineral? Level easy\n" +
		"1) [HTML]<p>Is this a rock or a mineral?</p><m/>[/HTML]\n\n" +
		"~ Quartz is a mineral.\n" +
		"@ Quartz is a mineral.\n" +
		"\n" +
		"a) rock\n" +
		"*b) mineral\n" +
		"\n" +
		"Points: 1\n\n" +
		"Title: Rock or mineral? Level easy\n" +
		"2) Second\n\n" +
		"*a) rock\n" +
		"b) mineral\n" +
		"\n"
	assert.Equal(t, want, FormatTranscript(bank))
}

func TestFeedbackPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		general       string
		correct       string
		incorrect     string
		wantCorrect   string
		wantIncorrect string
	}{
		{"general only", "g", "", "", "g", "g"},
		{"general and correct", "g", "c", "", "c", "g"},
		{"general and incorrect", "g", "", "i", "g", "i"},
		{"all explicit", "g", "c", "i", "c", "i"},
		{"none", "", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mcQuestion("t", "w", 1, "x")
			q.GeneralFeedback = tt.general
			q.CorrectFeedback = tt.correct
			q.IncorrectFeedback = tt.incorrect
			bank, err := NewBank("b", []Question{q})
			require.NoError(t, err)
			text := FormatTranscript(bank)

			if tt.wantCorrect != "" {
				assert.Contains(t, text, "\n~ "+tt.wantCorrect+"\n")
			} else {
				assert.NotContains(t, text, "~ ")
			}
			if tt.wantIncorrect != "" {
				assert.Contains(t, text, "\n@ "+tt.wantIncorrect+"\n")
			} else {
				assert.NotContains(t, text, "@ ")
			}
			if tt.correct != "" && tt.incorrect != "" {
				assert.NotContains(t, text, tt.general)
			}
		})
	}
}

func TestTranscriptBlockStructure(t *testing.T) {
	const k = 4
	var questions []Question
	for i := 0; i < k; i++ {
		c := i + 2
		choices := make([]string, c)
		for j := range choices {
			choices[j] = fmt.Sprintf("choice %d-%d", i, j)
		}
		questions = append(questions, mcQuestion("t", fmt.Sprintf("q%d", i), c, choices...))
	}
	bank, err := NewBank("b", questions)
	require.NoError(t, err)

	text := FormatTranscript(bank)
	// Blocks contain blank lines of their own, so split on the header.
	assert.Equal(t, k, strings.Count(text, "Points: "))

	for i, block := range strings.Split(text, "Points: ")[1:] {
		var choiceLines []string
		for _, line := range strings.Split(block, "\n") {
			trimmed := strings.TrimPrefix(line, "*")
			if len(trimmed) > 2 && trimmed[1] == ')' && trimmed[0] >= 'a' && trimmed[0] <= 'j' {
				choiceLines = append(choiceLines, line)
			}
		}
		require.Len(t, choiceLines, i+2)
		starred := 0
		for j, line := range choiceLines {
			if strings.HasPrefix(line, "*") {
				starred++
			}
			letter := string(rune('a' + j))
			assert.True(t, strings.HasPrefix(strings.TrimPrefix(line, "*"), letter+") "), "line %q", line)
		}
		assert.Equal(t, 1, starred)
		assert.True(t, strings.HasSuffix(block, "\n\n"))
	}
}

func TestTranscriptSkipsEmptySlotsAndMarksCorrectSlot(t *testing.T) {
	q := mcQuestion("t", "w", 3, "a", "", "c")
	bank, err := NewBank("b", []Question{q})
	require.NoError(t, err)
	text := FormatTranscript(bank)
	assert.Contains(t, text, "a) a\n*b) c\n")
}
