package exercises

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed seed/exercises.yaml
var seedCatalog []byte

// SeedCatalog returns the built-in starter catalog.
func SeedCatalog() ([]Exercise, error) {
	return DecodeCatalog(seedCatalog)
}

// DecodeCatalog parses a YAML (or JSON) list of exercises and validates each
// record. Unknown fields are rejected.
func DecodeCatalog(data []byte) ([]Exercise, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list []Exercise
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return []Exercise{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidExercise, err)
	}

	seen := make(map[int64]struct{}, len(list))
	for _, ex := range list {
		if err := Validate(ex); err != nil {
			return nil, err
		}
		if _, dup := seen[ex.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidExercise, ex.ID)
		}
		seen[ex.ID] = struct{}{}
	}
	return list, nil
}
