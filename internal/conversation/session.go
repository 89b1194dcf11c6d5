// Package conversation drives the scripted screening dialogue: a phase
// state machine with deterministic input classification, duplicate
// confirmation, and technical question sequencing.
package conversation

import (
	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/interview"
)

// Phase identifies a stage of the scripted dialogue.
type Phase string

const (
	PhaseGreeting           Phase = "greeting"
	PhaseInfoGathering      Phase = "info_gathering"
	PhaseTechStack          Phase = "tech_stack"
	PhaseTechnicalQuestions Phase = "technical_questions"
	PhaseClosing            Phase = "closing"
	PhaseEnded              Phase = "ended"
)

// Turn is one transcript entry.
type Turn struct {
	Role    string
	Content string
}

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

// pendingConfirmation is the duplicate-confirmation sub-state: an identity
// field whose value matched a stored candidate and now waits on a yes/no
// answer. Holding field and value together keeps half-cleared combinations
// unrepresentable.
type pendingConfirmation struct {
	field string
	value any
}

// Session is the per-conversation state. It is owned and mutated only by the
// engine, one message at a time.
type Session struct {
	ID     string
	Phase  Phase
	Record *candidate.Record

	infoIndex     int
	questions     []interview.Question
	questionIndex int
	transcript    []Turn
	pending       *pendingConfirmation
	smallTalkUsed int
}

// NewSession creates a fresh session in the greeting phase.
func NewSession(id string) *Session {
	return &Session{
		ID:     id,
		Phase:  PhaseGreeting,
		Record: &candidate.Record{SessionID: id},
	}
}

// Reset returns the session to its initial state, keeping the id.
func (s *Session) Reset() {
	*s = *NewSession(s.ID)
}

// enterPhase switches phase and resets the per-phase small-talk allowance.
func (s *Session) enterPhase(phase Phase) {
	s.Phase = phase
	s.smallTalkUsed = 0
}

// Transcript returns a copy of the conversation history.
func (s *Session) Transcript() []Turn {
	out := make([]Turn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) record(role, content string) {
	s.transcript = append(s.transcript, Turn{Role: role, Content: content})
}

// QuestionsAsked returns how many technical questions were chosen for this
// session.
func (s *Session) QuestionsAsked() int { return len(s.questions) }

// QuestionsAnswered returns how many of them the candidate has answered.
func (s *Session) QuestionsAnswered() int { return s.questionIndex }

// currentField returns the checklist field awaiting collection, or "" when
// the checklist is complete.
func (s *Session) currentField() string {
	if s.infoIndex >= len(infoChecklist) {
		return ""
	}
	return infoChecklist[s.infoIndex].field
}
