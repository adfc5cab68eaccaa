package exercises

import "errors"

var (
	ErrNotFound        = errors.New("exercise not found")
	ErrInvalidExercise = errors.New("invalid exercise")
	ErrNoStore         = errors.New("object store not configured")
)
