package exercises

import "context"

// Repo defines persistence operations for the exercise catalog.
type Repo interface {
	List(ctx context.Context) ([]Exercise, error)
	GetByID(ctx context.Context, id int64) (Exercise, error)
	Upsert(ctx context.Context, ex Exercise) error
}
