package program

import "ironlady-assistant/internal/knowledge"

// --- UseCase Inputs ---

type SearchInput struct {
	Query string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Programs []knowledge.Program
}

type SearchOutput struct {
	Programs []knowledge.Program
	Query    string
}

type FAQsOutput struct {
	FAQs []knowledge.FAQ
}

type EnrollmentOutput struct {
	Enrollment knowledge.Enrollment
}
