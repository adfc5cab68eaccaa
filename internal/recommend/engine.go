package recommend

import (
	"errors"
	"sort"
)

const (
	exercisesPerPosition = 2
	positionsRecommended = 2
)

// ErrEmptyCatalog means no exercises were supplied, so nothing can be recommended.
var ErrEmptyCatalog = errors.New("exercise catalog is empty")

// Profile carries the patient-level inputs Layer 2 needs.
type Profile struct {
	CombinedScore float64
	KneeAlignment KneeAlignment
	ToeTouch      ToeTouch
	TrunkSway     Sway
	HipSway       Sway
}

// SelectBestPositions orders every position by multiplier, highest first.
// Ties keep declaration order.
func SelectBestPositions(multipliers PositionMultipliers) PositionMultipliers {
	out := append(PositionMultipliers(nil), multipliers...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Multiplier > out[j].Multiplier
	})
	return out
}

// scorePosition returns every eligible exercise for p, scored and sorted.
func scorePosition(p Position, exercises []Exercise, profile Profile) []ScoredExercise {
	eligible := ApplyCoreStabilityFilter(ExercisesForPosition(p, exercises), profile.TrunkSway, profile.HipSway)
	scored := make([]ScoredExercise, 0, len(eligible))
	for _, ex := range eligible {
		scored = append(scored, ScoreExercise(ex, profile.CombinedScore, profile.KneeAlignment, profile.ToeTouch))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	return scored
}

// RankExercisesWithinPosition returns the top two exercises for p.
func RankExercisesWithinPosition(p Position, exercises []Exercise, profile Profile) []ScoredExercise {
	return topN(scorePosition(p, exercises, profile), exercisesPerPosition)
}

func topN(items []ScoredExercise, n int) []ScoredExercise {
	if len(items) > n {
		items = items[:n]
	}
	return append([]ScoredExercise{}, items...)
}

// Calculate runs the full pipeline: scores, Layer-1 position ranking,
// Layer-2 exercise ranking for every position, then keeps the first two
// positions that have at least one exercise. Inputs are never mutated and
// the output depends on nothing but the inputs.
func Calculate(answers QuestionnaireAnswers, sts STSAssessment, catalog []Exercise) (Result, error) {
	if len(catalog) == 0 {
		return Result{}, ErrEmptyCatalog
	}

	multipliers := CalculatePositionMultipliers(answers)
	painAvg := PainAverage(answers)
	symptomsAvg := SymptomAverage(answers)
	stsScore := CalculateSTSScore(sts.RepetitionCount, sts.Age, sts.Gender)
	combined := CalculateEnhancedCombinedScore(painAvg, symptomsAvg, stsScore.NormalizedScore)

	profile := Profile{
		CombinedScore: combined.Value,
		KneeAlignment: sts.KneeAlignment,
		ToeTouch:      answers.ToeTouch,
		TrunkSway:     sts.TrunkSway,
		HipSway:       sts.HipSway,
	}

	ranked := SelectBestPositions(multipliers)
	rankings := make([]PositionRanking, 0, len(ranked))
	populated := make([]PositionRecommendation, 0, len(ranked))
	for i, pm := range ranked {
		scored := scorePosition(pm.Position, catalog, profile)
		rankings = append(rankings, PositionRanking{
			Rank:          i + 1,
			Position:      pm.Position,
			Multiplier:    pm.Multiplier,
			ExerciseCount: len(scored),
		})
		if len(scored) == 0 {
			continue
		}
		populated = append(populated, PositionRecommendation{
			Position:           pm.Position,
			PositionMultiplier: pm.Multiplier,
			Exercises:          topN(scored, exercisesPerPosition),
		})
	}
	if len(populated) > positionsRecommended {
		populated = populated[:positionsRecommended]
	}

	return Result{
		PositionMultipliers: multipliers,
		AllPositionRankings: rankings,
		Scores: Scores{
			PainScore:          invertSeverity(painAvg),
			SymptomScore:       invertSeverity(symptomsAvg),
			STSPerformance:     stsScore.Performance,
			STSBenchmarkRange:  stsScore.BenchmarkRange,
			STSNormalizedScore: stsScore.NormalizedScore,
			CombinedScore:      combined.Value,
			ConflictResolved:   combined.ConflictResolved,
		},
		Recommendations: populated,
		BiomechanicalFlags: BiomechanicalFlags{
			CoreStabilityRequired: RequiresCoreStability(sts.TrunkSway, sts.HipSway),
			FlexibilityDeficit:    answers.ToeTouch == ToeTouchCannot,
			AlignmentIssue:        sts.KneeAlignment != AlignmentNormal,
		},
		Targets:       IdentifyTargets(sts, answers.ToeTouch),
		SectionScores: SectionScores(answers),
	}, nil
}
