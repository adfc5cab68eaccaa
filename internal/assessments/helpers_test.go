package assessments

import (
	"context"
	"testing"
	"time"

	"oaknee-backend/internal/exercises"
	"oaknee-backend/internal/shared/storage/object"
	localstore "oaknee-backend/internal/shared/storage/object/local"
)

var questionCodes = []string{
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12", "f13", "f14", "f15", "f16", "f17",
	"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9",
	"sp1", "sp2", "sp3", "sp4", "sp5",
	"s1", "s2", "s3", "s4", "s5",
	"st1", "st2",
	"q1", "q2", "q3", "q4",
}

func validSubmission(patientID string) Submission {
	responses := make(map[string]int, len(questionCodes))
	for _, code := range questionCodes {
		responses[code] = 2
	}
	return Submission{
		PatientID: patientID,
		Questionnaire: QuestionnaireInput{
			Responses: responses,
			ToeTouch:  "can",
		},
		STS: STSInput{
			RepetitionCount: 12,
			Age:             65,
			Gender:          "female",
			KneeAlignment:   "normal",
			TrunkSway:       "absent",
			HipSway:         "absent",
		},
	}
}

func seededCatalog(t *testing.T) *exercises.Service {
	t.Helper()
	svc := &exercises.Service{Repo: exercises.NewMemoryRepo()}
	if _, err := svc.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	return svc
}

func newTestService(t *testing.T, catalog CatalogSource) (*Service, object.ObjectStore) {
	t.Helper()
	store := localstore.New(t.TempDir())
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	return &Service{
		Repo:          NewMemoryRepo(),
		Catalog:       catalog,
		Store:         store,
		ReportsPrefix: "reports",
		Now: func() time.Time {
			now = now.Add(time.Minute)
			return now
		},
	}, store
}
