package knowledge

import (
	"fmt"
	"strings"
)

// Base is the load-once catalog of programs, FAQs, and enrollment info.
// It is read-only after New() and safe for concurrent use.
type Base struct {
	programs   []Program
	faqs       []FAQ
	enrollment Enrollment
}

// New loads the static knowledge base.
func New() *Base {
	return &Base{
		programs:   loadPrograms(),
		faqs:       loadFAQs(),
		enrollment: loadEnrollment(),
	}
}

// Context renders the catalog into the text block embedded in the system
// prompt. Pure and stable: identical output on every call.
func (b *Base) Context() string {
	var sb strings.Builder

	sb.WriteString("PROGRAMS:\n\n")
	for _, p := range b.programs {
		sb.WriteString(fmt.Sprintf("• %s\n", p.Name))
		sb.WriteString(fmt.Sprintf("  Duration: %s\n", p.Duration))
		sb.WriteString(fmt.Sprintf("  Price: %s\n", p.Price))
		sb.WriteString(fmt.Sprintf("  Format: %s\n", p.Format))
		sb.WriteString(fmt.Sprintf("  Description: %s\n\n", p.Description))
	}

	sb.WriteString("\nENROLLMENT PROCESS:\n")
	for i, step := range b.enrollment.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	sb.WriteString("\nCONTACT & COMMUNITY:\n")
	sb.WriteString(fmt.Sprintf("Phone: %s\n", b.enrollment.Contact.Phone))
	sb.WriteString(fmt.Sprintf("Website: %s\n", b.enrollment.Contact.Website))
	sb.WriteString(fmt.Sprintf("Mission: %s\n", b.enrollment.Contact.Mission))
	sb.WriteString(fmt.Sprintf("Community: %s\n", b.enrollment.Contact.CommunitySize))

	return sb.String()
}

// Programs returns all programs in load order.
func (b *Base) Programs() []Program {
	out := make([]Program, len(b.programs))
	copy(out, b.programs)
	return out
}

// FAQs returns all FAQ entries in load order.
func (b *Base) FAQs() []FAQ {
	out := make([]FAQ, len(b.faqs))
	copy(out, b.faqs)
	return out
}

// Enrollment returns the enrollment info block.
func (b *Base) Enrollment() Enrollment {
	return b.enrollment
}

// Search returns programs whose name, description, or any highlight contains
// the query, case-insensitively, in load order. An empty query matches every
// program by the substring rule.
func (b *Base) Search(query string) []Program {
	q := strings.ToLower(query)

	var results []Program
	for _, p := range b.programs {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			results = append(results, p)
			continue
		}
		for _, h := range p.Highlights {
			if strings.Contains(strings.ToLower(h), q) {
				results = append(results, p)
				break
			}
		}
	}
	return results
}
