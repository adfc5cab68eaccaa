package exercises

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[int64]Exercise
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Exercise)}
}

// List returns all exercises ordered by id.
func (r *MemoryRepo) List(ctx context.Context) ([]Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Exercise, 0, len(r.data))
	for _, ex := range r.data {
		out = append(out, ex)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID returns a single exercise.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Exercise, error) {
	if err := ctx.Err(); err != nil {
		return Exercise{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ex, ok := r.data[id]
	if !ok {
		return Exercise{}, ErrNotFound
	}
	return ex, nil
}

// Upsert inserts or replaces an exercise by id.
func (r *MemoryRepo) Upsert(ctx context.Context, ex Exercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[ex.ID] = ex
	return nil
}
