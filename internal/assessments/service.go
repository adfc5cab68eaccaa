package assessments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"oaknee-backend/internal/recommend"
	"oaknee-backend/internal/shared/metrics"
	"oaknee-backend/internal/shared/storage/object"
	"oaknee-backend/internal/shared/telemetry"
	"oaknee-backend/internal/shared/validation"
)

// CatalogSource supplies the exercise catalog for each computation.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]recommend.Exercise, error)
}

// Service runs the recommendation engine for submissions and records the results.
type Service struct {
	Repo          Repo
	Catalog       CatalogSource
	Store         object.ObjectStore
	ReportsPrefix string
	Now           func() time.Time
}

// Preview computes a recommendation without persisting anything.
func (s *Service) Preview(ctx context.Context, sub Submission) (recommend.Result, error) {
	if err := ValidateSubmission(sub); err != nil {
		return recommend.Result{}, err
	}
	return s.compute(ctx, sub)
}

// Submit validates, computes, persists and snapshots an assessment.
func (s *Service) Submit(ctx context.Context, sub Submission) (Assessment, error) {
	sub.PatientID = strings.TrimSpace(sub.PatientID)
	if err := ValidateSubmission(sub); err != nil {
		return Assessment{}, err
	}
	if sub.PatientID == "" {
		return Assessment{}, fmt.Errorf("%w: %w", ErrInvalidInput, &validation.Error{Fields: []validation.FieldError{
			{Field: "patientId", Tag: "required", Message: "patientId is required"},
		}})
	}

	result, err := s.compute(ctx, sub)
	if err != nil {
		return Assessment{}, err
	}

	a := Assessment{
		ID:            uuid.NewString(),
		PatientID:     sub.PatientID,
		Questionnaire: sub.answers(),
		STS:           sub.sts(),
		Result:        result,
		CreatedAt:     s.now(),
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		metrics.IncRecommendationFailed("persist")
		return Assessment{}, fmt.Errorf("store assessment: %w", err)
	}

	s.writeSnapshot(ctx, a)

	telemetry.Info("assessment.submitted", map[string]any{
		"assessment_id":     a.ID,
		"patient_id":        a.PatientID,
		"combined_score":    result.Scores.CombinedScore,
		"conflict_resolved": result.Scores.ConflictResolved,
		"positions":         len(result.Recommendations),
	})
	return a, nil
}

// Get returns a stored assessment.
func (s *Service) Get(ctx context.Context, id string) (Assessment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Assessment{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, id)
}

// ListByPatient returns a patient's history, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]Assessment, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) compute(ctx context.Context, sub Submission) (recommend.Result, error) {
	start := time.Now()
	catalog, err := s.Catalog.Catalog(ctx)
	if err != nil {
		metrics.IncRecommendationFailed("catalog")
		return recommend.Result{}, fmt.Errorf("load catalog: %w", err)
	}

	result, err := recommend.Calculate(sub.answers(), sub.sts(), catalog)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyCatalog) {
			metrics.IncRecommendationFailed("empty_catalog")
		} else {
			metrics.IncRecommendationFailed("engine")
		}
		return recommend.Result{}, err
	}

	metrics.IncRecommendationComputed()
	metrics.ObserveRecommendationDuration(start)
	if result.Scores.ConflictResolved {
		metrics.IncConflictResolution()
	}
	return result, nil
}

// writeSnapshot stores the assessment JSON under the reports prefix. Failures are logged only.
func (s *Service) writeSnapshot(ctx context.Context, a Assessment) {
	if s.Store == nil {
		return
	}
	body, err := json.Marshal(a)
	if err != nil {
		metrics.IncSnapshotFailed()
		telemetry.Warn("assessment.snapshot_failed", map[string]any{"assessment_id": a.ID, "error": err.Error()})
		return
	}
	key := SnapshotKey(s.ReportsPrefix, a.ID)
	if _, err := s.Store.Put(ctx, key, "application/json", bytes.NewReader(body)); err != nil {
		metrics.IncSnapshotFailed()
		telemetry.Warn("assessment.snapshot_failed", map[string]any{"assessment_id": a.ID, "key": key, "error": err.Error()})
	}
}

// SnapshotKey is the object key for an assessment's JSON report.
func SnapshotKey(prefix, id string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "reports"
	}
	return path.Join(prefix, id+".json")
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ValidateSubmission checks field rules and rejects response codes that
// differ only in case or surrounding space.
func ValidateSubmission(sub Submission) error {
	if err := validation.Struct(sub); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if _, err := recommend.NormalizeResponses(sub.Questionnaire.Responses); err != nil {
		verr := &validation.Error{Fields: []validation.FieldError{{
			Field:   "questionnaire.responses",
			Tag:     "unique",
			Message: err.Error(),
		}}}
		return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}
	return nil
}
