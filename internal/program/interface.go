package program

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns the full program catalog in load order.
	List(ctx context.Context) (ListOutput, error)

	// Search filters programs by a case-insensitive substring query.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// FAQs returns the FAQ catalog.
	FAQs(ctx context.Context) (FAQsOutput, error)

	// Enrollment returns the enrollment process info.
	Enrollment(ctx context.Context) (EnrollmentOutput, error)
}
