package usecase

import "strings"

// Keyword sets for the deterministic fallback, checked in priority order
// against the latest user message only. First match wins.
var (
	programKeywords    = []string{"program", "course", "offer", "available"}
	enrollmentKeywords = []string{"enroll", "apply", "join", "sign up"}
	pricingKeywords    = []string{"cost", "price", "fee", "tuition", "payment"}
	scheduleKeywords   = []string{"schedule", "duration", "time", "when"}
)

const programsFallback = `**Our Programs:**

Iron Lady offers comprehensive leadership and professional development programs:

• **Leadership Essentials Program** - Master maximizing, shameless pitching, and office politics
• **100 Board Members Program** - Fast-track techniques to break through career plateaus
• **Master of Business Warfare** - Flagship program for C-suite aspirants and 1+ Crore income goals
• **Business War Tactics Masterclass** - Transformative results in the smallest possible time
• **Winning Mindset Development** - Group coaching for an unapologetic winning mindset

Would you like detailed information about any specific program?`

const enrollmentFallback = `**Enrollment Process:**

Getting started is easy:

1. **Explore Programs** - Choose the one aligned with your breakthrough goals
2. **Contact Us** - Call +91-6360823123 or reach out through our website
3. **Consultation** - Schedule a conversation about your ambitions and goals
4. **Program Details** - Receive investment information and next cohort dates
5. **Join** - Become part of our 78,000+ Women Leaders' Ecosystem

Would you like help choosing the right program for you?`

const pricingFallback = `**Program Pricing:**

Our programs are premium investments in your breakthrough:

• Leadership Essentials Program - Contact for pricing
• 100 Board Members Program - Premium investment, contact for details
• Master of Business Warfare - Investment for serious C-suite aspirants
• Business War Tactics Masterclass - Contact for latest offerings

**Financial Options:**
- Flexible payment options available
- Corporate sponsorship programs
- Special offers for group enrollments

Would you like to speak with our team about investment details?`

const scheduleFallback = `**Program Schedules:**

Our programs offer flexible formats:

• **Hybrid** - Online learning plus in-person workshops
• **Online Cohorts** - Comprehensive programs with exclusive networking events
• **Intensive Workshops** - Interactive sessions with practical implementation

Multiple cohorts start throughout the year. Contact us at +91-6360823123 for the latest schedule.

What format works best for you?`

const genericFallback = `Thank you for your question! I'm here to help you learn about Iron Lady's programs and services.

I can assist you with:
• Program information and recommendations
• Enrollment process and requirements
• Scheduling and pricing details
• Career development guidance

What would you like to know more about?`

// fallbackResponse is the deterministic reply used when the external model is
// unavailable or fails. Pure function of the latest user message.
func fallbackResponse(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, programKeywords):
		return programsFallback
	case containsAny(lower, enrollmentKeywords):
		return enrollmentFallback
	case containsAny(lower, pricingKeywords):
		return pricingFallback
	case containsAny(lower, scheduleKeywords):
		return scheduleFallback
	default:
		return genericFallback
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
