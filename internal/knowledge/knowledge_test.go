package knowledge_test

import (
	"strings"
	"testing"

	"ironlady-assistant/internal/knowledge"
)

func TestContext(t *testing.T) {
	kb := knowledge.New()

	t.Run("Structure", func(t *testing.T) {
		ctx := kb.Context()

		for _, section := range []string{"PROGRAMS:", "ENROLLMENT PROCESS:", "CONTACT & COMMUNITY:"} {
			if !strings.Contains(ctx, section) {
				t.Errorf("context missing section %q", section)
			}
		}
		if !strings.Contains(ctx, "Leadership Essentials Program") {
			t.Errorf("context missing first program name")
		}
		if !strings.Contains(ctx, "1. Explore our programs") {
			t.Errorf("enrollment steps not numbered from 1")
		}
		if !strings.Contains(ctx, "Phone: +91-6360823123") {
			t.Errorf("context missing contact phone")
		}

		// Programs must render in load order.
		first := strings.Index(ctx, "Leadership Essentials Program")
		last := strings.Index(ctx, "Winning Mindset Development")
		if first < 0 || last < 0 || first > last {
			t.Errorf("programs rendered out of load order")
		}
	})

	t.Run("Stable Across Calls", func(t *testing.T) {
		a := kb.Context()
		b := kb.Context()
		if a != b {
			t.Errorf("context changed between calls")
		}
	})
}

func TestPrograms(t *testing.T) {
	kb := knowledge.New()

	programs := kb.Programs()
	if len(programs) != 5 {
		t.Fatalf("expected 5 programs, got %d", len(programs))
	}
	if programs[0].Name != "Leadership Essentials Program" {
		t.Errorf("unexpected first program: %s", programs[0].Name)
	}
	if programs[4].Name != "Winning Mindset Development" {
		t.Errorf("unexpected last program: %s", programs[4].Name)
	}

	// Returned slice is a copy: mutating it must not affect the base.
	programs[0].Name = "mutated"
	if kb.Programs()[0].Name != "Leadership Essentials Program" {
		t.Errorf("Programs() leaked internal state")
	}
}

func TestSearch(t *testing.T) {
	kb := knowledge.New()

	t.Run("Case-Insensitive Match", func(t *testing.T) {
		results := kb.Search("C-suite")
		if len(results) == 0 {
			t.Fatalf("expected matches for C-suite")
		}
		for _, p := range results {
			hay := strings.ToLower(p.Name + " " + p.Description + " " + strings.Join(p.Highlights, " "))
			if !strings.Contains(hay, "c-suite") {
				t.Errorf("program %q does not contain query", p.Name)
			}
		}
	})

	t.Run("Highlight-Only Match", func(t *testing.T) {
		// "Board-level positioning" appears only inside a highlight.
		results := kb.Search("board-level positioning")
		if len(results) != 1 || results[0].Name != "100 Board Members Program" {
			t.Errorf("unexpected results: %v", len(results))
		}
	})

	t.Run("No Match", func(t *testing.T) {
		if results := kb.Search("quantum chromodynamics"); len(results) != 0 {
			t.Errorf("expected no results, got %d", len(results))
		}
	})

	// Boundary case: the empty string is a substring of everything, so an
	// empty query returns the full catalog.
	t.Run("Empty Query Matches All", func(t *testing.T) {
		results := kb.Search("")
		if len(results) != len(kb.Programs()) {
			t.Errorf("expected all %d programs, got %d", len(kb.Programs()), len(results))
		}
	})
}

func TestFAQsAndEnrollment(t *testing.T) {
	kb := knowledge.New()

	if len(kb.FAQs()) != 7 {
		t.Errorf("expected 7 FAQs, got %d", len(kb.FAQs()))
	}

	enr := kb.Enrollment()
	if len(enr.Steps) != 6 {
		t.Errorf("expected 6 enrollment steps, got %d", len(enr.Steps))
	}
	if enr.Contact.Phone != "+91-6360823123" {
		t.Errorf("unexpected contact phone: %s", enr.Contact.Phone)
	}
	if len(enr.WhoShouldJoin) != 3 {
		t.Errorf("expected 3 who-should-join segments, got %d", len(enr.WhoShouldJoin))
	}
}
