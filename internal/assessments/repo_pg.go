package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Inputs and results are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO assessments (
    id,
    patient_id,
    questionnaire,
    sts,
    result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	questionnaire, err := json.Marshal(a.Questionnaire)
	if err != nil {
		return fmt.Errorf("marshal questionnaire: %w", err)
	}
	sts, err := json.Marshal(a.STS)
	if err != nil {
		return fmt.Errorf("marshal sts: %w", err)
	}
	result, err := json.Marshal(a.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, a.ID, a.PatientID, questionnaire, sts, result, a.CreatedAt)
	return err
}

// GetByID returns an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	const query = `
SELECT id, patient_id, questionnaire, sts, result, created_at
FROM assessments
WHERE id = $1`
	a, err := scanAssessment(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	return a, nil
}

// ListByPatient returns assessments for a patient, newest first.
func (r *PGRepo) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]Assessment, error) {
	const query = `
SELECT id, patient_id, questionnaire, sts, result, created_at
FROM assessments
WHERE patient_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var questionnaire, sts, result []byte
	if err := row.Scan(&a.ID, &a.PatientID, &questionnaire, &sts, &result, &a.CreatedAt); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(questionnaire, &a.Questionnaire); err != nil {
		return Assessment{}, fmt.Errorf("decode questionnaire: %w", err)
	}
	if err := json.Unmarshal(sts, &a.STS); err != nil {
		return Assessment{}, fmt.Errorf("decode sts: %w", err)
	}
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return Assessment{}, fmt.Errorf("decode result: %w", err)
	}
	return a, nil
}
