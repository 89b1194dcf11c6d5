package conversation

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/interview"
	"github.com/okozlov/screenbot/internal/logger"
	"github.com/okozlov/screenbot/internal/store"
)

// DefaultMaxSmallTalk bounds how many small-talk detours one phase allows
// before replies fall back to literal handling.
const DefaultMaxSmallTalk = 2

type handler func(ctx context.Context, s *Session, message string) string

// Engine drives sessions through their phases. It owns no session state
// itself and may serve many independent sessions, one message per session at
// a time.
type Engine struct {
	store        store.Store
	questions    *interview.Generator
	duplicates   *candidate.Detector
	logger       *zap.Logger
	maxSmallTalk int
	handlers     map[Phase]handler
}

// New creates an engine. The store and detector may be nil, which disables
// persistence and duplicate checking respectively; the conversation itself
// still works.
func New(st store.Store, questions *interview.Generator, duplicates *candidate.Detector, log *zap.Logger, maxSmallTalk int) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if questions == nil {
		questions = interview.NewGenerator(0, 0)
	}
	if maxSmallTalk <= 0 {
		maxSmallTalk = DefaultMaxSmallTalk
	}

	e := &Engine{
		store:        st,
		questions:    questions,
		duplicates:   duplicates,
		logger:       log,
		maxSmallTalk: maxSmallTalk,
	}
	e.handlers = map[Phase]handler{
		PhaseGreeting:           e.handleGreeting,
		PhaseInfoGathering:      e.handleInfoGathering,
		PhaseTechStack:          e.handleTechStack,
		PhaseTechnicalQuestions: e.handleTechnicalQuestions,
		PhaseClosing:            e.handleClosing,
		PhaseEnded:              e.handleEnded,
	}
	return e
}

// ProcessMessage advances the session by one user message. It always returns
// a reply and whether the conversation has ended; no input or collaborator
// failure aborts processing.
func (e *Engine) ProcessMessage(ctx context.Context, s *Session, message string) (string, bool) {
	// The ending-keyword check runs before any phase logic.
	if isEnding(message) {
		s.record(roleUser, message)
		s.enterPhase(PhaseEnded)
		s.record(roleAssistant, replyForceEnd)
		e.logTurn(s)
		return replyForceEnd, true
	}

	s.record(roleUser, message)

	var reply string
	switch {
	case e.smallTalkAllowed(s) && isSmallTalk(message, e.looksLikeDirectAnswer(s, message)):
		reply = e.handleSmallTalk(s, message)
	default:
		h, ok := e.handlers[s.Phase]
		if !ok {
			// A session must never sit in an undefined phase; reset instead
			// of crashing.
			e.logger.Warn("resetting session in unknown phase",
				logger.SessionFields(s.ID, string(s.Phase))...)
			s.Reset()
			reply = replyRestart
		} else {
			reply = h(ctx, s, message)
		}
	}

	s.record(roleAssistant, reply)

	ended := s.Phase == PhaseEnded
	if s.Phase == PhaseClosing && !ended {
		e.persist(ctx, s)
	}

	e.logTurn(s)
	return reply, ended
}

func (e *Engine) handleGreeting(_ context.Context, s *Session, _ string) string {
	// The first message only triggers the welcome; it is not data.
	s.enterPhase(PhaseInfoGathering)
	return replyWelcome
}

func (e *Engine) handleEnded(_ context.Context, _ *Session, _ string) string {
	return replyEndedNotice
}

// smallTalkAllowed caps social detours per phase; the counter resets on
// every phase entry.
func (e *Engine) smallTalkAllowed(s *Session) bool {
	switch s.Phase {
	case PhaseInfoGathering, PhaseTechStack, PhaseTechnicalQuestions:
		return s.smallTalkUsed < e.maxSmallTalk
	default:
		return false
	}
}

// looksLikeDirectAnswer guards the small-talk heuristic: a message that fits
// the pending checklist field is an answer even when it ends with "?".
func (e *Engine) looksLikeDirectAnswer(s *Session, message string) bool {
	if s.Phase != PhaseInfoGathering {
		return false
	}
	field := s.currentField()
	if field == "" {
		return false
	}
	return appropriateFor(message, field)
}

// handleSmallTalk acknowledges the detour and redirects to the pending
// prompt instead of treating the message as a field answer.
func (e *Engine) handleSmallTalk(s *Session, message string) string {
	s.smallTalkUsed++

	lower := strings.ToLower(message)
	ack := "I understand. "
	switch {
	case containsAny(lower, []string{"how are you", "how do you do", "nice to meet"}):
		ack = "Thank you! I'm doing well and excited to learn more about you. "
	case containsAny(lower, []string{"thank you", "thanks", "appreciate"}):
		ack = "You're very welcome! "
	case containsAny(lower, []string{"interesting", "cool", "nice", "great"}):
		ack = "I'm glad you think so! "
	case isQuestion(message):
		ack = "That's a great question! I'll be happy to discuss that further. "
	}

	switch s.Phase {
	case PhaseInfoGathering:
		if s.infoIndex < len(infoChecklist) {
			prompt := infoChecklist[s.infoIndex].prompt
			return ack + "Now, " + lowerFirst(prompt)
		}
		return ack + "Let's continue with learning about your technical background."
	case PhaseTechnicalQuestions:
		if s.questionIndex < len(s.questions) {
			return ack + "Let's get back to our technical discussion: " + s.questions[s.questionIndex].Text
		}
		return ack + "Let me wrap up our conversation."
	default:
		return ack + "Could you tell me about your technical skills and experience?"
	}
}

// persist writes the accumulated record once the session reaches closing.
// Failures are logged and swallowed: a broken store must not break the
// conversation, and the user never sees raw error internals.
func (e *Engine) persist(ctx context.Context, s *Session) {
	if e.store == nil {
		return
	}

	if err := e.store.Save(ctx, s.Record); err != nil {
		e.logger.Warn("saving candidate failed",
			append(logger.SessionFields(s.ID, string(s.Phase)), zap.Error(err))...)
		return
	}

	e.logger.Debug("candidate saved", logger.SessionFields(s.ID, string(s.Phase))...)
}

func (e *Engine) logTurn(s *Session) {
	e.logger.Debug("conversation turn",
		append(logger.SessionFields(s.ID, string(s.Phase)),
			zap.Float64("completion_pct", s.Record.Completion()),
			zap.Int("questions_asked", s.QuestionsAsked()),
			zap.Int("questions_answered", s.QuestionsAnswered()),
			zap.String("email", candidate.MaskEmail(s.Record.Email)),
		)...)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
