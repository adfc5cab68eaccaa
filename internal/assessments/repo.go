package assessments

import "context"

// Repo defines persistence operations for assessments.
type Repo interface {
	Create(ctx context.Context, a Assessment) error
	GetByID(ctx context.Context, id string) (Assessment, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]Assessment, error)
}
