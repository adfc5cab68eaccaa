package exercises

import (
	"context"
	"fmt"
	"io"
	"strings"

	"oaknee-backend/internal/shared/storage/object"
	"oaknee-backend/internal/shared/telemetry"
)

const maxCatalogSize = 5 << 20 // 5MB

// Service contains business logic for the exercise catalog.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// Catalog returns every exercise for ranking, ordered by id.
func (s *Service) Catalog(ctx context.Context) ([]Exercise, error) {
	return s.Repo.List(ctx)
}

// Get returns one exercise.
func (s *Service) Get(ctx context.Context, id int64) (Exercise, error) {
	if id <= 0 {
		return Exercise{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// EnsureSeeded loads the built-in catalog when the repository is empty.
func (s *Service) EnsureSeeded(ctx context.Context) (int, error) {
	existing, err := s.Repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	seed, err := SeedCatalog()
	if err != nil {
		return 0, err
	}
	if err := s.upsertAll(ctx, seed); err != nil {
		return 0, err
	}
	telemetry.Info("exercises.seeded", map[string]any{"count": len(seed)})
	return len(seed), nil
}

// ImportFromStore reads a YAML/JSON catalog object and upserts every record.
// Nothing is written unless the whole file validates.
func (s *Service) ImportFromStore(ctx context.Context, key string) (int, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, fmt.Errorf("%w: key is required", ErrInvalidExercise)
	}
	if s.Store == nil {
		return 0, ErrNoStore
	}

	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("open catalog %s: %w", key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxCatalogSize+1))
	if err != nil {
		return 0, fmt.Errorf("read catalog %s: %w", key, err)
	}
	if len(data) > maxCatalogSize {
		return 0, fmt.Errorf("%w: catalog %s exceeds %d bytes", ErrInvalidExercise, key, maxCatalogSize)
	}

	list, err := DecodeCatalog(data)
	if err != nil {
		return 0, err
	}
	if err := s.upsertAll(ctx, list); err != nil {
		return 0, err
	}

	telemetry.Info("exercises.imported", map[string]any{"key": key, "count": len(list)})
	return len(list), nil
}

func (s *Service) upsertAll(ctx context.Context, list []Exercise) error {
	for _, ex := range list {
		if err := s.Repo.Upsert(ctx, ex); err != nil {
			return err
		}
	}
	return nil
}
