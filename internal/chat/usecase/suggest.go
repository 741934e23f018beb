package usecase

import "strings"

// Follow-up suggestion sets. Exactly one set is selected per message, in
// priority order; each set has exactly three entries in fixed order.
var (
	suggestProgramKeywords = []string{"program", "course"}
	suggestEnrollKeywords  = []string{"enroll", "apply"}

	programSuggestions = []string{
		"What are the prerequisites?",
		"How long is the program?",
		"What's the cost?",
	}
	enrollmentSuggestions = []string{
		"What documents do I need?",
		"When does the next cohort start?",
		"Are there any scholarships available?",
	}
	genericSuggestions = []string{
		"Tell me about your programs",
		"How do I enroll?",
		"What makes Iron Lady unique?",
	}
)

// suggestFollowUps proposes three follow-up questions based on the latest
// user message. Deterministic; first matching category wins.
func suggestFollowUps(message string) []string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, suggestProgramKeywords):
		return programSuggestions
	case containsAny(lower, suggestEnrollKeywords):
		return enrollmentSuggestions
	default:
		return genericSuggestions
	}
}
