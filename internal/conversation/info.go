package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okozlov/screenbot/internal/candidate"
)

type infoField struct {
	field  string
	prompt string
}

// infoChecklist fixes the order in which basic information is collected.
var infoChecklist = []infoField{
	{candidate.FieldFullName, "What is your full name?"},
	{candidate.FieldEmail, "What is your email address?"},
	{candidate.FieldPhone, "What is your phone number?"},
	{candidate.FieldExperienceYears, "How many years of professional experience do you have?"},
	{candidate.FieldDesiredPositions, "What position(s) are you interested in?"},
	{candidate.FieldLocation, "What is your current location?"},
}

// identityFields trigger a duplicate check before being accepted.
var identityFields = map[string]bool{
	candidate.FieldFullName: true,
	candidate.FieldEmail:    true,
	candidate.FieldPhone:    true,
}

var (
	firstIntRe  = regexp.MustCompile(`\d+`)
	listSplitRe = regexp.MustCompile(`[,\n]`)
	yesAnswers  = map[string]bool{"yes": true, "y": true, "yeah": true, "yep": true, "true": true, "correct": true}
	noAnswers   = map[string]bool{"no": true, "n": true, "nope": true, "false": true, "incorrect": true}
)

func (e *Engine) handleInfoGathering(ctx context.Context, s *Session, message string) string {
	if s.pending != nil {
		return e.handleDuplicateConfirmation(ctx, s, message)
	}

	field := s.currentField()
	if field == "" {
		// Checklist already complete; move straight to the tech stack.
		s.enterPhase(PhaseTechStack)
		return techStackPrompt(s.Record.FullName)
	}

	cls := classify(message, field)

	// Questions get a contextual answer and a re-prompt, never advancing.
	if cls.isQuestion {
		return answerFieldQuestion(message, field)
	}

	if !cls.appropriate {
		return inappropriateReply(field)
	}

	value, errMsg := parseFieldValue(field, message)
	if errMsg != "" {
		return errMsg
	}

	if identityFields[field] && e.duplicates != nil {
		probe := *s.Record
		probe.Apply(field, value)
		if dup, reason := e.duplicates.Check(ctx, &probe); dup {
			s.pending = &pendingConfirmation{field: field, value: value}
			return fmt.Sprintf("%s. Have you applied before? Please answer 'yes' or 'no'.", reason)
		}
	}

	s.Record.Apply(field, value)
	return e.advanceChecklist(s)
}

// handleDuplicateConfirmation resolves the yes/no sub-dialogue entered when
// an identity field matched a stored candidate.
func (e *Engine) handleDuplicateConfirmation(_ context.Context, s *Session, message string) string {
	answer := strings.ToLower(strings.TrimSpace(message))

	switch {
	case yesAnswers[answer]:
		s.pending = nil
		s.enterPhase(PhaseEnded)
		return replyAlreadyApplied
	case noAnswers[answer]:
		s.Record.Apply(s.pending.field, s.pending.value)
		s.pending = nil
		return e.advanceChecklist(s)
	default:
		return replyConfirmYesNo
	}
}

// advanceChecklist moves past the field just stored and either prompts for
// the next one or transitions to the tech-stack phase.
func (e *Engine) advanceChecklist(s *Session) string {
	justStored := infoChecklist[s.infoIndex].field
	s.infoIndex++

	if s.infoIndex < len(infoChecklist) {
		next := infoChecklist[s.infoIndex]
		if justStored == candidate.FieldFullName {
			return fmt.Sprintf("Nice to meet you, %s! %s", s.Record.FullName, next.prompt)
		}
		return "Thank you! " + next.prompt
	}

	s.enterPhase(PhaseTechStack)
	return techStackPrompt(s.Record.FullName)
}

// parseFieldValue turns raw input into the typed value for a checklist
// field. A non-empty message return means validation failed and the field
// must not advance.
func parseFieldValue(field, message string) (any, string) {
	trimmed := strings.TrimSpace(message)

	switch field {
	case candidate.FieldFullName:
		if err := candidate.ValidateFullName(trimmed); err != nil {
			return nil, "Please provide your full name."
		}
		return trimmed, ""

	case candidate.FieldEmail:
		if err := candidate.ValidateEmail(trimmed); err != nil {
			return nil, "Please provide a valid email address."
		}
		return trimmed, ""

	case candidate.FieldPhone:
		if err := candidate.ValidatePhone(trimmed); err != nil {
			return nil, "Please provide a valid phone number with at least 10 digits."
		}
		return trimmed, ""

	case candidate.FieldExperienceYears:
		// The first integer in the text wins: "about 3 years" parses as 3.
		match := firstIntRe.FindString(trimmed)
		if match == "" {
			return nil, "Please provide your years of experience as a number."
		}
		years, err := strconv.Atoi(match)
		if err != nil || candidate.ValidateExperience(years) != nil {
			return nil, "Experience years should be between 0 and 50."
		}
		return years, ""

	case candidate.FieldDesiredPositions:
		var positions []string
		for _, part := range listSplitRe.Split(trimmed, -1) {
			if part = strings.TrimSpace(part); part != "" {
				positions = append(positions, part)
			}
		}
		if len(positions) == 0 {
			return nil, "Please tell me which position(s) you are interested in."
		}
		return positions, ""

	case candidate.FieldLocation:
		if trimmed == "" {
			return nil, "Please tell me your current location."
		}
		return trimmed, ""

	default:
		return trimmed, ""
	}
}
