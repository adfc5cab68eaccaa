package recommend

import (
	"math"
	"strings"
)

// Target explains a biomechanical finding and how ranking responds to it.
type Target struct {
	Issue    string   `json:"issue"`
	Strategy string   `json:"strategy"`
	Muscles  []string `json:"muscles,omitempty"`
	Examples []string `json:"examples"`
}

// IdentifyTargets derives rule-based targets from the STS observations and
// toe-touch result, in a fixed order: alignment, flexibility, core stability.
func IdentifyTargets(sts STSAssessment, toeTouch ToeTouch) []Target {
	out := make([]Target, 0, 3)
	switch sts.KneeAlignment {
	case AlignmentValgus:
		out = append(out, Target{
			Issue:    "Dynamic knee instability (valgus alignment, knock-knees)",
			Strategy: "Boost exercises recruiting gluteus medius/minimus",
			Muscles:  []string{"glute_med_min"},
			Examples: []string{"Side lying clamshell", "Hip abduction", "Side plank variations"},
		})
	case AlignmentVarus:
		out = append(out, Target{
			Issue:    "Dynamic knee instability (varus alignment, bow-legged)",
			Strategy: "Boost exercises recruiting the adductors",
			Muscles:  []string{"adductors"},
			Examples: []string{"Copenhagen adductor exercises", "Adductor squeezes"},
		})
	}

	switch toeTouch {
	case ToeTouchCannot:
		out = append(out, Target{
			Issue:    "Limited posterior chain flexibility (cannot touch toes)",
			Strategy: "Boost exercises recruiting hamstring or gluteus maximus",
			Muscles:  []string{"hamstring", "glute_max"},
			Examples: []string{"Glute bridges", "Hamstring bridges", "Hip hinge exercises"},
		})
	case ToeTouchCan:
		out = append(out, Target{
			Issue:    "Good posterior chain flexibility (can touch toes)",
			Strategy: "No flexibility boost; quadruped work may suit if kneeling is tolerated",
			Examples: []string{"Quadruped exercises"},
		})
	}

	if RequiresCoreStability(sts.TrunkSway, sts.HipSway) {
		var sways []string
		if sts.TrunkSway == SwayPresent {
			sways = append(sways, "trunk sway")
		}
		if sts.HipSway == SwayPresent {
			sways = append(sways, "hip sway")
		}
		out = append(out, Target{
			Issue:    "Core instability (" + strings.Join(sways, " and ") + " present)",
			Strategy: "Only exercises with ipsilateral core engagement are eligible",
			Examples: []string{"Exercises requiring ipsilateral core stability"},
		})
	}
	return out
}

// SectionScore is a KOOS/WOMAC section summary for display.
type SectionScore struct {
	Section    string  `json:"section"`
	Average    float64 `json:"average"`
	Normalized float64 `json:"normalized"`
}

var sections = []struct {
	name  string
	codes []string
}{
	{"symptoms", []string{"s1", "s2", "s3", "s4", "s5"}},
	{"stiffness", []string{"st1", "st2"}},
	{"pain", painQuestions},
	{"function_adl", []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12", "f13", "f14", "f15", "f16", "f17"}},
	{"function_sports", symptomQuestions},
	{"quality_of_life", []string{"q1", "q2", "q3", "q4"}},
}

// SectionScores summarizes each questionnaire section on a 0-100 scale
// (100 = best). Unanswered items count as 0. These never affect ranking.
func SectionScores(answers QuestionnaireAnswers) []SectionScore {
	out := make([]SectionScore, 0, len(sections))
	for _, s := range sections {
		sum := 0
		for _, code := range s.codes {
			sum += severity(answers.Responses, code)
		}
		avg := float64(sum) / float64(len(s.codes))
		out = append(out, SectionScore{
			Section:    s.name,
			Average:    math.Round(avg*100) / 100,
			Normalized: math.Round(invertSeverity(avg)*1000) / 10,
		})
	}
	return out
}
