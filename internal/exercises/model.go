package exercises

import (
	"fmt"
	"strings"

	"oaknee-backend/internal/recommend"
)

// Exercise is the catalog record stored here and fed to the ranking engine.
type Exercise = recommend.Exercise

// Position and muscle names as stored in exercise_positions / exercise_muscles.
var (
	positionNames = []string{"DL_stand", "split_stand", "SL_stand", "quadruped", "supine_lying", "side_lying"}
	muscleNames   = []string{"quad", "hamstring", "glute_max", "glute_med_min", "adductors", "hip_flexors"}
)

func positionFlag(p *recommend.PositionFlags, name string) *bool {
	switch name {
	case "DL_stand":
		return &p.DLStand
	case "split_stand":
		return &p.SplitStand
	case "SL_stand":
		return &p.SLStand
	case "quadruped":
		return &p.Quadruped
	case "supine_lying":
		return &p.SupineLying
	case "side_lying":
		return &p.SideLying
	}
	return nil
}

func muscleLevel(m *recommend.MuscleRecruitment, name string) *int {
	switch name {
	case "quad":
		return &m.Quad
	case "hamstring":
		return &m.Hamstring
	case "glute_max":
		return &m.GluteMax
	case "glute_med_min":
		return &m.GluteMedMin
	case "adductors":
		return &m.Adductors
	case "hip_flexors":
		return &m.HipFlexors
	}
	return nil
}

// enabledPositions returns the position rows for an exercise, in column order.
func enabledPositions(ex Exercise) []string {
	out := make([]string, 0, len(positionNames))
	for _, name := range positionNames {
		if *positionFlag(&ex.Positions, name) {
			out = append(out, name)
		}
	}
	return out
}

type muscleRow struct {
	Muscle string
	Value  int
}

// recruitedMuscles returns non-zero muscle rows. Absent rows read back as 0.
func recruitedMuscles(ex Exercise) []muscleRow {
	out := make([]muscleRow, 0, len(muscleNames))
	for _, name := range muscleNames {
		if v := *muscleLevel(&ex.Muscles, name); v != 0 {
			out = append(out, muscleRow{Muscle: name, Value: v})
		}
	}
	return out
}

// Validate checks the ranges the ranking engine relies on.
func Validate(ex Exercise) error {
	if ex.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidExercise)
	}
	if strings.TrimSpace(ex.Name) == "" {
		return fmt.Errorf("%w: exercise %d has no name", ErrInvalidExercise, ex.ID)
	}
	if ex.DifficultyLevel < 1 || ex.DifficultyLevel > 10 {
		return fmt.Errorf("%w: exercise %d difficulty %d outside 1..10", ErrInvalidExercise, ex.ID, ex.DifficultyLevel)
	}
	for _, name := range muscleNames {
		if v := *muscleLevel(&ex.Muscles, name); v < 0 || v > 5 {
			return fmt.Errorf("%w: exercise %d %s level %d outside 0..5", ErrInvalidExercise, ex.ID, name, v)
		}
	}
	return nil
}
