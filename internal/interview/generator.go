package interview

import (
	"math/rand"
	"strings"
	"time"

	"github.com/okozlov/screenbot/internal/techstack"
)

// DefaultQuestionsPerTechnology caps how many questions one technology
// contributes to a session.
const DefaultQuestionsPerTechnology = 3

// Question pairs a technology with one question about it.
type Question struct {
	Technology string
	Text       string
}

// Generator produces the ordered question list for a session. The random
// source is injectable so tests can pin the selection.
type Generator struct {
	rand    *rand.Rand
	perTech int
}

// NewGenerator creates a generator. A zero seed means time-seeded selection;
// a non-positive perTech falls back to the default cap.
func NewGenerator(seed int64, perTech int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if perTech <= 0 {
		perTech = DefaultQuestionsPerTechnology
	}
	return &Generator{
		rand:    rand.New(rand.NewSource(seed)),
		perTech: perTech,
	}
}

// Questions picks up to perTech questions for every technology in the stack,
// at the tier matching the candidate's experience. Technologies are visited
// in stack category order, so the output order is stable apart from the
// selection inside one technology.
func (g *Generator) Questions(stack techstack.Stack, experienceYears int) []Question {
	tier := TierFor(experienceYears)

	var questions []Question
	for _, category := range techstack.Categories {
		for _, technology := range stack[category] {
			available := questionsFor(technology, tier)
			for _, text := range g.sample(available) {
				questions = append(questions, Question{Technology: technology, Text: text})
			}
		}
	}
	return questions
}

func questionsFor(technology string, tier Tier) []string {
	if byTier, ok := questionBank[strings.ToLower(technology)]; ok {
		return byTier[tier]
	}
	return genericQuestions(technology, tier)
}

// sample picks min(perTech, len(available)) distinct questions in random
// order.
func (g *Generator) sample(available []string) []string {
	count := min(g.perTech, len(available))
	if count == 0 {
		return nil
	}

	picked := make([]string, 0, count)
	for _, i := range g.rand.Perm(len(available))[:count] {
		picked = append(picked, available[i])
	}
	return picked
}

// Complexity buckets an answer by word count. Used for the encouragement
// line between questions.
func Complexity(answer string) string {
	words := len(strings.Fields(answer))
	switch {
	case words < 10:
		return "brief"
	case words < 50:
		return "moderate"
	default:
		return "detailed"
	}
}
