package exercises

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGRepo implements Repo over the normalized exercises schema.
type PGRepo struct {
	DB *sql.DB
}

// List returns every exercise, denormalized, ordered by id.
func (r *PGRepo) List(ctx context.Context) ([]Exercise, error) {
	const query = `
SELECT id, name, difficulty_level, core_ipsi, core_contra
FROM exercises
ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Exercise
	index := make(map[int64]int)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.DifficultyLevel, &ex.CoreIpsi, &ex.CoreContra); err != nil {
			return nil, err
		}
		index[ex.ID] = len(out)
		out = append(out, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []Exercise{}, nil
	}

	if err := r.loadPositions(ctx, out, index, `SELECT exercise_id, position FROM exercise_positions`); err != nil {
		return nil, err
	}
	if err := r.loadMuscles(ctx, out, index, `SELECT exercise_id, muscle, muscle_value FROM exercise_muscles`); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns one exercise with its positions and muscle levels.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Exercise, error) {
	const query = `
SELECT id, name, difficulty_level, core_ipsi, core_contra
FROM exercises
WHERE id = $1`
	var ex Exercise
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&ex.ID, &ex.Name, &ex.DifficultyLevel, &ex.CoreIpsi, &ex.CoreContra)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exercise{}, ErrNotFound
		}
		return Exercise{}, err
	}

	out := []Exercise{ex}
	index := map[int64]int{ex.ID: 0}
	if err := r.loadPositions(ctx, out, index, `SELECT exercise_id, position FROM exercise_positions WHERE exercise_id = $1`, id); err != nil {
		return Exercise{}, err
	}
	if err := r.loadMuscles(ctx, out, index, `SELECT exercise_id, muscle, muscle_value FROM exercise_muscles WHERE exercise_id = $1`, id); err != nil {
		return Exercise{}, err
	}
	return out[0], nil
}

// A position flag is true iff a matching exercise_positions row exists.
func (r *PGRepo) loadPositions(ctx context.Context, out []Exercise, index map[int64]int, query string, args ...any) error {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var position string
		if err := rows.Scan(&id, &position); err != nil {
			return err
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		if flag := positionFlag(&out[i].Positions, position); flag != nil {
			*flag = true
		}
	}
	return rows.Err()
}

// Muscles without a row stay at level 0.
func (r *PGRepo) loadMuscles(ctx context.Context, out []Exercise, index map[int64]int, query string, args ...any) error {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var id int64
		var muscle string
		var value int
		if err := rows.Scan(&id, &muscle, &value); err != nil {
			return err
		}
		i, ok := index[id]
		if !ok {
			continue
		}
		if level := muscleLevel(&out[i].Muscles, muscle); level != nil {
			*level = value
		}
	}
	return rows.Err()
}

// Upsert writes the exercise row and replaces its position and muscle rows.
func (r *PGRepo) Upsert(ctx context.Context, ex Exercise) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsert = `
INSERT INTO exercises (id, name, difficulty_level, core_ipsi, core_contra)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    difficulty_level = EXCLUDED.difficulty_level,
    core_ipsi = EXCLUDED.core_ipsi,
    core_contra = EXCLUDED.core_contra,
    updated_at = now()`
	if _, err = tx.ExecContext(ctx, upsert, ex.ID, ex.Name, ex.DifficultyLevel, ex.CoreIpsi, ex.CoreContra); err != nil {
		return fmt.Errorf("upsert exercise %d: %w", ex.ID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM exercise_positions WHERE exercise_id = $1`, ex.ID); err != nil {
		return err
	}
	for _, position := range enabledPositions(ex) {
		if _, err = tx.ExecContext(ctx, `INSERT INTO exercise_positions (exercise_id, position) VALUES ($1, $2)`, ex.ID, position); err != nil {
			return fmt.Errorf("insert position %s: %w", position, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM exercise_muscles WHERE exercise_id = $1`, ex.ID); err != nil {
		return err
	}
	for _, m := range recruitedMuscles(ex) {
		if _, err = tx.ExecContext(ctx, `INSERT INTO exercise_muscles (exercise_id, muscle, muscle_value) VALUES ($1, $2, $3)`, ex.ID, m.Muscle, m.Value); err != nil {
			return fmt.Errorf("insert muscle %s: %w", m.Muscle, err)
		}
	}

	return tx.Commit()
}
