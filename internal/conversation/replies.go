package conversation

import (
	"fmt"
	"strings"

	"github.com/okozlov/screenbot/internal/candidate"
	"github.com/okozlov/screenbot/internal/interview"
	"github.com/okozlov/screenbot/internal/techstack"
)

// Greeting is the fixed bootstrap message the hosting layer shows before the
// user's first turn.
func Greeting() string {
	return "Hello! Welcome to TalentScout's hiring assistant. Say hi whenever you are ready to begin."
}

const replyWelcome = `Hello! Welcome to TalentScout's hiring assistant. I'm here to help with your initial screening process.

I'll be collecting some basic information about you and then asking a few technical questions based on your skills. This should take about 10-15 minutes.

Let's start with your basic information. What is your full name?`

const replyForceEnd = `Thank you for your time today!

Your information has been recorded and our team will review it shortly. If you're a good fit for any of our current opportunities, we'll be in touch within the next few days.

Have a great day!`

const replyGoodbye = "Thank you for taking the time to speak with us today. Have a great day!"

const replyEndedNotice = "Our conversation has already ended. Please start a new session if you'd like to apply."

const replyRestart = "I'm sorry, there seems to be an issue. Let me restart our conversation."

const replyAlreadyApplied = `Thank you for confirming. Since you've already applied, our team has your information on file.

If you'd like to update your information or apply for a different position, please contact our team directly.

Have a great day!`

const replyConfirmYesNo = "Please answer with 'yes' or 'no': have you applied with TalentScout before?"

const replyTechStackRetry = `I didn't catch any specific technologies from your response. Could you please list some specific technologies you work with?

For example: "I work with Python, React, MySQL, and Docker"`

func techStackPrompt(name string) string {
	return fmt.Sprintf(`Perfect, %s! Now I'd like to learn about your technical skills.

Please tell me about your tech stack including:
- Programming languages you're proficient in
- Frameworks you've worked with
- Databases you have experience with
- Tools and technologies you use

Just list them naturally, and I'll organize them for our discussion.`, name)
}

func techStackSummary(stack techstack.Stack, first interview.Question) string {
	return fmt.Sprintf(`Great! I can see you have experience with:

%s

Now I'll ask you a few technical questions to better understand your expertise. Let's start with the first question:

%s`, stack.Summary(), first.Text)
}

func nextQuestionReply(answer string, next interview.Question) string {
	return fmt.Sprintf("%s\n\nNext question about %s:\n%s", feedbackFor(answer), next.Technology, next.Text)
}

// feedbackFor returns a short encouragement scaled to answer length.
func feedbackFor(answer string) string {
	switch interview.Complexity(answer) {
	case "detailed":
		return "Thank you for the detailed explanation."
	case "moderate":
		return "I appreciate that response."
	default:
		return "Thank you."
	}
}

func closingMessage() string {
	return `That completes our initial screening process!

Here's what happens next:
- Our team will review your information and responses
- If there's a good match with our current openings, we'll contact you within 2-3 business days
- You may be invited for a more detailed technical interview

Thank you for your time and interest in opportunities with TalentScout. We appreciate you taking the time to speak with us today!

Is there anything else you'd like to know about our process?`
}

// closingAnswer keeps the closing phase conversational, answering common
// meta-questions without ending the session.
func closingAnswer(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, []string{"when", "how long", "timeline"}):
		return `Typically, our team reviews applications within 2-3 business days. If there's a good match, we'll reach out for the next steps.

Is there anything else you'd like to know about our process or the company?`
	case containsAny(lower, []string{"what happens", "next steps", "process"}):
		return `After this conversation, your information goes to our technical team for review. If selected, you'll hear from us for a more detailed technical interview.

Any other questions about what to expect?`
	case containsAny(lower, []string{"company", "about", "culture"}):
		return `TalentScout works with various tech companies to find the right fit for candidates. Each company has its own culture and requirements, which we'll discuss if there's a match.

Would you like to know anything else?`
	default:
		return `I appreciate your interest! Our team will be in touch if there's a good match with our current opportunities.

Is there anything else you'd like to ask before we wrap up?`
	}
}

// answerFieldQuestion answers a candidate's question contextually and
// re-prompts for the field being collected, without advancing.
func answerFieldQuestion(message, field string) string {
	lower := strings.ToLower(message)
	name := humanizeField(field)

	switch {
	case containsAny(lower, []string{"how long", "time", "minutes"}):
		return fmt.Sprintf("This process typically takes 10-15 minutes. Now, could you please tell me your %s?", name)
	case containsAny(lower, []string{"why", "purpose", "reason"}):
		return fmt.Sprintf("We're collecting this information for our initial screening to match you with suitable opportunities. Could you please provide your %s?", name)
	case containsAny(lower, []string{"what happens", "next", "after"}):
		return fmt.Sprintf("After collecting your information, I'll ask some technical questions, then our team will review everything. For now, could you share your %s?", name)
	case containsAny(lower, []string{"safe", "secure", "privacy"}):
		return fmt.Sprintf("Your information is securely stored and only used for recruitment purposes. Now, may I have your %s?", name)
	default:
		return fmt.Sprintf("That's a good question! I'll be happy to discuss more details after we collect the basic information. Could you please tell me your %s first?", name)
	}
}

// inappropriateReply is the field-specific correction for input that fails
// the plausibility predicate.
func inappropriateReply(field string) string {
	switch field {
	case candidate.FieldFullName:
		return "That doesn't look like a name. Could you please tell me your full name? For example: 'John Smith'"
	case candidate.FieldEmail:
		return "That doesn't appear to be an email address. Please provide your email (e.g., john@example.com)"
	case candidate.FieldPhone:
		return "I need a valid phone number. Please provide your phone number with digits."
	case candidate.FieldExperienceYears:
		return "Could you tell me how many years of professional experience you have, as a number?"
	default:
		return fmt.Sprintf("Could you please provide your %s?", humanizeField(field))
	}
}

func humanizeField(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
