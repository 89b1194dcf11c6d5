package conversation

import (
	"strings"
	"unicode"

	"github.com/okozlov/screenbot/internal/candidate"
)

// questionWords are the interrogative lead words and phrases. Any of them
// appearing in a lowercased message marks it as a question. This is a known
// blunt heuristic: an answer like "How-to Writer" also matches.
var questionWords = []string{
	"what", "how", "why", "when", "where", "who", "which",
	"can you", "could you", "would you", "do you", "are you",
	"is it", "does it",
}

var greetingWords = []string{
	"hello", "hi", "hey", "good morning", "good afternoon",
}

var experienceWords = []string{"year", "month", "experience", "worked"}

// classification is the deterministic label set for one user message.
type classification struct {
	isQuestion  bool
	isGreeting  bool
	appropriate bool
}

// classify labels a message relative to the field currently being collected.
// Pure function of its inputs.
func classify(message, field string) classification {
	return classification{
		isQuestion:  isQuestion(message),
		isGreeting:  containsAny(strings.ToLower(message), greetingWords),
		appropriate: appropriateFor(message, field),
	}
}

func isQuestion(message string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(message)), questionWords) ||
		strings.HasSuffix(strings.TrimSpace(message), "?")
}

// appropriateFor is the field-specific plausibility predicate. It is
// intentionally loose: real validation happens afterwards.
func appropriateFor(message, field string) bool {
	trimmed := strings.TrimSpace(message)
	question := isQuestion(message)

	switch field {
	case candidate.FieldFullName:
		return !question && trimmed != "" && len(strings.Fields(trimmed)) <= 4
	case candidate.FieldEmail:
		return strings.Contains(message, "@") && !question
	case candidate.FieldPhone:
		return containsDigit(message) && !question
	case candidate.FieldExperienceYears:
		hasHint := containsDigit(message) || containsAny(strings.ToLower(message), experienceWords)
		return hasHint && !question
	default:
		return true
	}
}

func containsAny(message string, words []string) bool {
	for _, word := range words {
		if strings.Contains(message, word) {
			return true
		}
	}
	return false
}

func containsDigit(message string) bool {
	for _, r := range message {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
