package usecase

import (
	"strings"
	"testing"
)

func TestFallbackResponse(t *testing.T) {
	cases := []struct {
		name    string
		message string
		marker  string
	}{
		{"Programs Branch", "What programs do you offer?", "**Our Programs:**"},
		{"Enrollment Branch", "How do I enroll?", "**Enrollment Process:**"},
		{"Pricing Branch", "What's the cost?", "**Program Pricing:**"},
		{"Schedule Branch", "When is the schedule?", "**Program Schedules:**"},
		{"Generic Branch", "Hello there", "What would you like to know more about?"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fallbackResponse(tc.message)
			if !strings.Contains(got, tc.marker) {
				t.Errorf("message %q: expected marker %q in response, got: %.80s",
					tc.message, tc.marker, got)
			}
			if got != fallbackResponse(tc.message) {
				t.Errorf("message %q: fallback is not deterministic", tc.message)
			}
		})
	}

	t.Run("Case Insensitive", func(t *testing.T) {
		if fallbackResponse("WHAT PROGRAMS DO YOU OFFER?") != fallbackResponse("what programs do you offer?") {
			t.Errorf("keyword matching must be case-insensitive")
		}
	})

	t.Run("Priority Order", func(t *testing.T) {
		// Matches both program and pricing keywords; program wins by priority.
		got := fallbackResponse("What is the cost of your programs?")
		if !strings.Contains(got, "**Our Programs:**") {
			t.Errorf("program category must win the priority tie")
		}
	})

	t.Run("Never Empty", func(t *testing.T) {
		for _, msg := range []string{"", "xyzzy", "???"} {
			if strings.TrimSpace(fallbackResponse(msg)) == "" {
				t.Errorf("message %q: empty fallback", msg)
			}
		}
	})
}
