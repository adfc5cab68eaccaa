package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"oaknee-backend/internal/shared/storage/object"
	localstore "oaknee-backend/internal/shared/storage/object/local"
)

func TestSeedCatalogIsValid(t *testing.T) {
	list, err := SeedCatalog()
	if err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	if len(list) < 11 {
		t.Fatalf("expected at least 11 seed exercises, got %d", len(list))
	}
	if list[0].Name != "DL Squat" || !list[0].Positions.DLStand || list[0].Muscles.Quad != 5 {
		t.Fatalf("unexpected first seed exercise: %+v", list[0])
	}
}

func TestDecodeCatalogRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "difficulty out of range", data: "- {id: 1, name: a, difficulty_level: 11}"},
		{name: "muscle out of range", data: "- {id: 1, name: a, difficulty_level: 2, muscles: {quad: 6}}"},
		{name: "empty name", data: "- {id: 1, name: '', difficulty_level: 2}"},
		{name: "duplicate id", data: "- {id: 1, name: a, difficulty_level: 2}\n- {id: 1, name: b, difficulty_level: 3}"},
		{name: "unknown field", data: "- {id: 1, name: a, difficulty_level: 2, colour: red}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCatalog([]byte(tt.data)); !errors.Is(err, ErrInvalidExercise) {
				t.Fatalf("expected ErrInvalidExercise, got %v", err)
			}
		})
	}
}

func TestDecodeCatalogAcceptsJSON(t *testing.T) {
	data := `[{"id": 7, "name": "Glute Bridge", "difficulty_level": 2, "positions": {"supine_lying": true}, "muscles": {"glute_max": 5}}]`
	list, err := DecodeCatalog([]byte(data))
	if err != nil {
		t.Fatalf("DecodeCatalog: %v", err)
	}
	if len(list) != 1 || !list[0].Positions.SupineLying || list[0].Muscles.GluteMax != 5 {
		t.Fatalf("unexpected decode: %+v", list)
	}
}

func TestEnsureSeededOnlyWhenEmpty(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	n, err := svc.EnsureSeeded(context.Background())
	if err != nil || n == 0 {
		t.Fatalf("expected seed, got n=%d err=%v", n, err)
	}
	n, err = svc.EnsureSeeded(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("expected no reseed, got n=%d err=%v", n, err)
	}
}

func TestImportFromStore(t *testing.T) {
	ctx := context.Background()
	store := localstore.New(t.TempDir())
	catalog := "- {id: 100, name: Mini Squat, difficulty_level: 2, positions: {DL_stand: true}, muscles: {quad: 3}}\n"
	if _, err := store.Put(ctx, "catalog/exercises.yaml", "application/yaml", strings.NewReader(catalog)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	svc := &Service{Repo: NewMemoryRepo(), Store: store}
	n, err := svc.ImportFromStore(ctx, "catalog/exercises.yaml")
	if err != nil {
		t.Fatalf("ImportFromStore: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported, got %d", n)
	}
	ex, err := svc.Get(ctx, 100)
	if err != nil || ex.Name != "Mini Squat" {
		t.Fatalf("unexpected stored exercise %+v err=%v", ex, err)
	}
}

func TestImportFromStoreInvalidWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := localstore.New(t.TempDir())
	catalog := "- {id: 1, name: ok, difficulty_level: 2}\n- {id: 2, name: bad, difficulty_level: 0}\n"
	if _, err := store.Put(ctx, "c.yaml", "application/yaml", strings.NewReader(catalog)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Store: store}
	if _, err := svc.ImportFromStore(ctx, "c.yaml"); !errors.Is(err, ErrInvalidExercise) {
		t.Fatalf("expected ErrInvalidExercise, got %v", err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(list))
	}
}

func TestImportFromStoreRejectsOversizedCatalog(t *testing.T) {
	ctx := context.Background()
	store := localstore.New(t.TempDir())

	// Whole records only, so a truncated read would still decode cleanly.
	var b strings.Builder
	lastID := 0
	for b.Len() <= maxCatalogSize {
		lastID++
		fmt.Fprintf(&b, "- {id: %d, name: Step %d, difficulty_level: 3}\n", lastID, lastID)
	}
	if _, err := store.Put(ctx, "big.yaml", "application/yaml", strings.NewReader(b.String())); err != nil {
		t.Fatalf("Put: %v", err)
	}

	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Store: store}
	n, err := svc.ImportFromStore(ctx, "big.yaml")
	if !errors.Is(err, ErrInvalidExercise) || n != 0 {
		t.Fatalf("expected ErrInvalidExercise and no import, got n=%d err=%v", n, err)
	}
	list, _ := repo.List(ctx)
	if len(list) != 0 {
		t.Fatalf("expected nothing stored, got %d", len(list))
	}
	if _, err := repo.GetByID(ctx, int64(lastID)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected last record absent, got %v", err)
	}
}

func TestImportFromStoreMissingObject(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Store: localstore.New(t.TempDir())}
	if _, err := svc.ImportFromStore(context.Background(), "missing.yaml"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected object.ErrNotFound, got %v", err)
	}
}
