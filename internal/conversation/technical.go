package conversation

import (
	"context"
	"fmt"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/techstack"
)

func (e *Engine) handleTechStack(_ context.Context, s *Session, message string) string {
	stack := techstack.Parse(message)
	s.Record.TechStack = map[string][]string(stack)

	if stack.Empty() {
		return replyTechStackRetry
	}

	questions := e.questions.Questions(stack, s.Record.ExperienceYears)
	if len(questions) == 0 {
		// Nothing to ask; wrap up directly.
		s.enterPhase(PhaseClosing)
		return closingMessage()
	}

	s.questions = questions
	s.questionIndex = 0
	s.Record.InterviewResponses = map[string]candidate.Response{}
	s.enterPhase(PhaseTechnicalQuestions)

	return techStackSummary(stack, questions[0])
}

func (e *Engine) handleTechnicalQuestions(_ context.Context, s *Session, message string) string {
	if s.questionIndex >= len(s.questions) {
		s.enterPhase(PhaseClosing)
		return closingMessage()
	}

	question := s.questions[s.questionIndex]
	if s.Record.InterviewResponses == nil {
		s.Record.InterviewResponses = map[string]candidate.Response{}
	}
	key := fmt.Sprintf("%s_%d", question.Technology, s.questionIndex)
	s.Record.InterviewResponses[key] = candidate.Response{
		Question:   question.Text,
		Answer:     message,
		Technology: question.Technology,
	}

	s.questionIndex++

	if s.questionIndex < len(s.questions) {
		return nextQuestionReply(message, s.questions[s.questionIndex])
	}

	s.enterPhase(PhaseClosing)
	return "Thank you for your detailed responses!\n\n" + closingMessage()
}

func (e *Engine) handleClosing(_ context.Context, s *Session, message string) string {
	if isDefinitiveGoodbye(message) {
		s.enterPhase(PhaseEnded)
		return replyGoodbye
	}
	return closingAnswer(message)
}
