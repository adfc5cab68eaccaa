package recommend

import "math"

const (
	difficultyDecay       = 0.2
	alignmentDivisor      = 5.0
	flexibilityDivisor    = 12.5
	difficultyScaleSpread = 9.0
)

// PreferredDifficulty maps a capability score onto the 1-10 difficulty scale.
func PreferredDifficulty(combinedScore float64) float64 {
	return 1 + difficultyScaleSpread*combinedScore
}

// CalculateDifficultyModifier is 1.0 when the exercise matches the preferred
// difficulty and decays by 0.2 per point of distance.
func CalculateDifficultyModifier(combinedScore float64, exerciseDifficulty int) float64 {
	distance := math.Abs(float64(exerciseDifficulty) - PreferredDifficulty(combinedScore))
	return 1 / (1 + difficultyDecay*distance)
}

// CalculateAlignmentModifier boosts hip abductor work for valgus knees and
// adductor work for varus knees. Range [1.0, 2.0].
func CalculateAlignmentModifier(alignment KneeAlignment, ex Exercise) float64 {
	switch alignment {
	case AlignmentValgus:
		return 1 + float64(ex.Muscles.GluteMedMin)/alignmentDivisor
	case AlignmentVarus:
		return 1 + float64(ex.Muscles.Adductors)/alignmentDivisor
	default:
		return 1
	}
}

// CalculateFlexibilityModifier boosts hamstring/glute max work when the
// patient cannot touch their toes. Range [1.0, 1.4].
func CalculateFlexibilityModifier(toeTouch ToeTouch, ex Exercise) float64 {
	if toeTouch != ToeTouchCannot {
		return 1
	}
	target := max(ex.Muscles.Hamstring, ex.Muscles.GluteMax)
	return 1 + float64(target)/flexibilityDivisor
}

// ScoreExercise composes the three modifiers multiplicatively.
func ScoreExercise(ex Exercise, combinedScore float64, alignment KneeAlignment, toeTouch ToeTouch) ScoredExercise {
	difficulty := CalculateDifficultyModifier(combinedScore, ex.DifficultyLevel)
	align := CalculateAlignmentModifier(alignment, ex)
	flex := CalculateFlexibilityModifier(toeTouch, ex)
	return ScoredExercise{
		Exercise:            ex,
		DifficultyScore:     difficulty,
		AlignmentModifier:   align,
		FlexibilityModifier: flex,
		FinalScore:          difficulty * align * flex,
	}
}
