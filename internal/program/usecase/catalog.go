package usecase

import (
	"context"

	"ironlady-assistant/internal/program"
)

// List returns the full program catalog in load order.
func (uc *implUseCase) List(ctx context.Context) (program.ListOutput, error) {
	return program.ListOutput{Programs: uc.kb.Programs()}, nil
}

// Search filters programs by a case-insensitive substring query against
// name, description, and highlights. An empty query matches everything.
func (uc *implUseCase) Search(ctx context.Context, input program.SearchInput) (program.SearchOutput, error) {
	return program.SearchOutput{
		Programs: uc.kb.Search(input.Query),
		Query:    input.Query,
	}, nil
}

// FAQs returns the FAQ catalog.
func (uc *implUseCase) FAQs(ctx context.Context) (program.FAQsOutput, error) {
	return program.FAQsOutput{FAQs: uc.kb.FAQs()}, nil
}

// Enrollment returns the enrollment process info.
func (uc *implUseCase) Enrollment(ctx context.Context) (program.EnrollmentOutput, error) {
	return program.EnrollmentOutput{Enrollment: uc.kb.Enrollment()}, nil
}
