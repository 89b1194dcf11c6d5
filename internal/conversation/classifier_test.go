package conversation

import (
	"testing"

	"github.com/okozlov/screenbot/internal/candidate"
)

func TestIsQuestion(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"what is this for?", true},
		{"Can you tell me more", true},
		{"John Smith", false},
		{"john@example.com", false},
		{"5551234567?", true},
	}

	for _, tc := range cases {
		if got := isQuestion(tc.message); got != tc.want {
			t.Fatalf("isQuestion(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestAppropriateForEmail(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"john@example.com", true},
		{"JOHN@EXAMPLE.COM", true},
		{"no at sign here", false},
		{"what is your email?", false},
		{"john@example.com?", false},
	}

	for _, tc := range cases {
		if got := appropriateFor(tc.message, candidate.FieldEmail); got != tc.want {
			t.Fatalf("appropriateFor(%q, email) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestAppropriateForName(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"John Smith", true},
		{"Maria de la Cruz", true},
		{"my full name is John Smith", false},
		{"", false},
		{"what should I say?", false},
	}

	for _, tc := range cases {
		if got := appropriateFor(tc.message, candidate.FieldFullName); got != tc.want {
			t.Fatalf("appropriateFor(%q, full_name) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestAppropriateForPhoneAndExperience(t *testing.T) {
	if !appropriateFor("(555) 123-4567", candidate.FieldPhone) {
		t.Fatalf("expected digits to qualify as a phone answer")
	}
	if appropriateFor("no digits at all", candidate.FieldPhone) {
		t.Fatalf("expected digit-free message to be rejected for phone")
	}

	if !appropriateFor("5 years", candidate.FieldExperienceYears) {
		t.Fatalf("expected numeric experience answer to qualify")
	}
	if !appropriateFor("I worked for a long time", candidate.FieldExperienceYears) {
		t.Fatalf("expected experience wording to qualify")
	}
	if appropriateFor("quite some time", candidate.FieldExperienceYears) {
		t.Fatalf("expected vague answer to be rejected for experience")
	}
}

func TestAppropriateForUnknownFieldAlwaysTrue(t *testing.T) {
	if !appropriateFor("anything at all", candidate.FieldLocation) {
		t.Fatalf("expected free-form fields to accept any message")
	}
}

func TestClassifyGreeting(t *testing.T) {
	cls := classify("hello there", candidate.FieldFullName)
	if !cls.isGreeting {
		t.Fatalf("expected greeting to be detected")
	}
}

func TestIsSmallTalk(t *testing.T) {
	cases := []struct {
		message      string
		directAnswer bool
		want         bool
	}{
		{"how are you doing today", false, true},
		{"nice to meet you", false, true},
		{"John Smith", true, false},
		{"oh wow", false, true},
		{"do you store my data?", false, true},
		{"John Smith?", true, false},
	}

	for _, tc := range cases {
		if got := isSmallTalk(tc.message, tc.directAnswer); got != tc.want {
			t.Fatalf("isSmallTalk(%q, %v) = %v, want %v", tc.message, tc.directAnswer, got, tc.want)
		}
	}
}

func TestIsEnding(t *testing.T) {
	for _, message := range []string{"bye", "ok bye", "thanks, that's all", "I am done"} {
		if !isEnding(message) {
			t.Fatalf("expected %q to end the conversation", message)
		}
	}
	if isEnding("John Smith") {
		t.Fatalf("a name must not end the conversation")
	}
}

func TestIsDefinitiveGoodbye(t *testing.T) {
	if !isDefinitiveGoodbye("goodbye!") {
		t.Fatalf("expected goodbye to be definitive")
	}
	if isDefinitiveGoodbye("when will I hear back") {
		t.Fatalf("a question is not a goodbye")
	}
}
