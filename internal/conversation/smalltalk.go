package conversation

import (
	"regexp"
	"strings"
)

// endingKeywords force-end the conversation from any phase, before phase
// dispatch.
var endingKeywords = []string{
	"bye", "goodbye", "exit", "quit", "thanks", "thank you", "done", "finish",
}

// definitiveGoodbyes end the closing phase; anything else there keeps the
// meta-question loop going.
var definitiveGoodbyes = []string{
	"goodbye", "bye bye", "see you later", "have a good day",
	"talk to you later", "catch you later",
}

// smallTalkRe marks a message as conversational filler rather than a direct
// answer. Indicators match on word boundaries so that short ones like "oh"
// do not fire inside names such as "John".
var smallTalkRe = regexp.MustCompile(`\b(?:` +
	`how are you|nice to meet|thank you|thanks|cool|interesting|` +
	`wow|really|oh|i see|that sounds|how long have you|` +
	`what do you think|can you tell me|i was wondering` +
	`)\b`)

func isEnding(message string) bool {
	return containsAny(strings.ToLower(message), endingKeywords)
}

func isDefinitiveGoodbye(message string) bool {
	return containsAny(strings.ToLower(message), definitiveGoodbyes)
}

// isSmallTalk reports whether the message is a social detour. A trailing
// question mark only counts when the message does not read as a direct
// answer to the pending prompt.
func isSmallTalk(message string, looksLikeDirectAnswer bool) bool {
	if smallTalkRe.MatchString(strings.ToLower(strings.TrimSpace(message))) {
		return true
	}
	return strings.HasSuffix(strings.TrimSpace(message), "?") && !looksLikeDirectAnswer
}
