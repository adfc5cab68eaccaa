package recommend

import (
	"math"

	"github.com/montanaflynn/stats"
)

const maxSeverity = 4

// positionQuestions maps each directly measured position to the question
// codes that describe it.
var positionQuestions = []struct {
	position Position
	codes    []string
}{
	{PositionDLStand, []string{"f3", "f4", "f5", "f6", "f8", "sp1"}},
	{PositionSplitStand, []string{"f1", "f2", "f3", "f7", "f13", "f15", "sp1", "sp4"}},
	{PositionSLStand, []string{"f1", "f2", "f4", "f9", "f11", "sp1", "sp2", "sp3", "sp4"}},
	{PositionQuadruped, []string{"f5", "sp5", "st2", "p3", "p4"}},
}

var (
	painQuestions    = []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}
	symptomQuestions = []string{"sp1", "sp2", "sp3", "sp4", "sp5"}
)

const lyingFloor = 0.1

// severity reads a response; missing or out-of-range answers read as 0.
func severity(responses map[string]int, code string) int {
	v, ok := responses[code]
	if !ok || v < 0 || v > maxSeverity {
		return 0
	}
	return v
}

func severities(responses map[string]int, codes []string) []float64 {
	out := make([]float64, 0, len(codes))
	for _, code := range codes {
		out = append(out, float64(severity(responses, code)))
	}
	return out
}

// CalculatePositionMultipliers converts questionnaire severities into a
// per-position capability multiplier. Missing codes count as 0 in the mean.
// Lying is derived: max(0.1, 1 - best active multiplier).
func CalculatePositionMultipliers(answers QuestionnaireAnswers) PositionMultipliers {
	out := make(PositionMultipliers, 0, len(Positions))
	bestActive := 0.0
	for _, pq := range positionQuestions {
		avg, err := stats.Mean(severities(answers.Responses, pq.codes))
		if err != nil {
			avg = 0
		}
		m := (maxSeverity - avg) / maxSeverity
		bestActive = math.Max(bestActive, m)
		out = append(out, PositionMultiplier{Position: pq.position, Multiplier: m})
	}
	out = append(out, PositionMultiplier{
		Position:   PositionLying,
		Multiplier: math.Max(lyingFloor, 1-bestActive),
	})
	return out
}

// CalculateAverage averages values, excluding non-positive and NaN entries.
// It returns 0 when nothing remains.
func CalculateAverage(values []float64) float64 {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		valid = append(valid, v)
	}
	avg, err := stats.Mean(valid)
	if err != nil {
		return 0
	}
	return avg
}

// PainAverage averages p1..p9 with unanswered items excluded.
func PainAverage(answers QuestionnaireAnswers) float64 {
	return CalculateAverage(severities(answers.Responses, painQuestions))
}

// SymptomAverage averages sp1..sp5 with unanswered items excluded.
func SymptomAverage(answers QuestionnaireAnswers) float64 {
	return CalculateAverage(severities(answers.Responses, symptomQuestions))
}

// invertSeverity maps a 0-4 severity average to a 0-1 capability.
func invertSeverity(avg float64) float64 {
	return (maxSeverity - avg) / maxSeverity
}

const (
	conflictThreshold = 0.5
	combinedFloor     = 0.1
	combinedCeiling   = 0.9
)

// CombinedScore is the blended capability estimate and whether the
// objective/subjective conflict rule fired.
type CombinedScore struct {
	Value            float64
	ConflictResolved bool
}

// CalculateEnhancedCombinedScore blends STS performance (50%) with pain and
// symptom capability (25% each). When objective and subjective measures
// differ by more than 0.5 the lower one is weighted in at 60%. The result is
// clamped to [0.1, 0.9].
func CalculateEnhancedCombinedScore(painAvg, symptomsAvg, sts float64) CombinedScore {
	painScore := invertSeverity(painAvg)
	symptomScore := invertSeverity(symptomsAvg)
	subjective := 0.5*painScore + 0.5*symptomScore

	combined := 0.5*sts + 0.25*painScore + 0.25*symptomScore
	conflict := math.Abs(sts-subjective) > conflictThreshold
	if conflict {
		conservative := math.Min(sts, subjective)
		combined = 0.6*conservative + 0.4*combined
	}
	return CombinedScore{
		Value:            clamp(combined, combinedFloor, combinedCeiling),
		ConflictResolved: conflict,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
