package recommend

// Position is a body posture an exercise is performed in.
type Position string

const (
	PositionDLStand    Position = "DL_stand"
	PositionSplitStand Position = "split_stand"
	PositionSLStand    Position = "SL_stand"
	PositionQuadruped  Position = "quadruped"
	PositionLying      Position = "lying"
)

// Positions lists the ranked positions in declaration order. Ties in
// Layer 1 keep this order.
var Positions = []Position{
	PositionDLStand,
	PositionSplitStand,
	PositionSLStand,
	PositionQuadruped,
	PositionLying,
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type KneeAlignment string

const (
	AlignmentNormal KneeAlignment = "normal"
	AlignmentValgus KneeAlignment = "valgus"
	AlignmentVarus  KneeAlignment = "varus"
)

type Sway string

const (
	SwayPresent Sway = "present"
	SwayAbsent  Sway = "absent"
)

type ToeTouch string

const (
	ToeTouchCan    ToeTouch = "can"
	ToeTouchCannot ToeTouch = "cannot"
)

// QuestionnaireAnswers holds severities keyed by lowercase question code
// (0 = best, 4 = worst) and the toe-touch flexibility flag.
type QuestionnaireAnswers struct {
	Responses map[string]int `json:"responses" yaml:"responses"`
	ToeTouch  ToeTouch       `json:"toe_touch_test" yaml:"toe_touch_test"`
}

// STSAssessment is the 30-second sit-to-stand test with biomechanical observations.
type STSAssessment struct {
	RepetitionCount int           `json:"repetition_count" yaml:"repetition_count"`
	Age             int           `json:"age" yaml:"age"`
	Gender          Gender        `json:"gender" yaml:"gender"`
	KneeAlignment   KneeAlignment `json:"knee_alignment" yaml:"knee_alignment"`
	TrunkSway       Sway          `json:"trunk_sway" yaml:"trunk_sway"`
	HipSway         Sway          `json:"hip_sway" yaml:"hip_sway"`
}

// PositionFlags marks the postures an exercise can be performed in.
type PositionFlags struct {
	DLStand     bool `json:"DL_stand" yaml:"DL_stand"`
	SplitStand  bool `json:"split_stand" yaml:"split_stand"`
	SLStand     bool `json:"SL_stand" yaml:"SL_stand"`
	Quadruped   bool `json:"quadruped" yaml:"quadruped"`
	SupineLying bool `json:"supine_lying" yaml:"supine_lying"`
	SideLying   bool `json:"side_lying" yaml:"side_lying"`
}

// MuscleRecruitment holds 0-5 recruitment levels per muscle group.
type MuscleRecruitment struct {
	Quad        int `json:"quad" yaml:"quad"`
	Hamstring   int `json:"hamstring" yaml:"hamstring"`
	GluteMax    int `json:"glute_max" yaml:"glute_max"`
	GluteMedMin int `json:"glute_med_min" yaml:"glute_med_min"`
	Adductors   int `json:"adductors" yaml:"adductors"`
	HipFlexors  int `json:"hip_flexors" yaml:"hip_flexors"`
}

// Exercise is a read-only catalog record.
type Exercise struct {
	ID              int64             `json:"id" yaml:"id"`
	Name            string            `json:"name" yaml:"name"`
	DifficultyLevel int               `json:"difficulty_level" yaml:"difficulty_level"`
	Positions       PositionFlags     `json:"positions" yaml:"positions"`
	Muscles         MuscleRecruitment `json:"muscles" yaml:"muscles"`
	CoreIpsi        bool              `json:"core_ipsi" yaml:"core_ipsi"`
	CoreContra      bool              `json:"core_contra" yaml:"core_contra"`
}

// PositionMultiplier pairs a position with its capability multiplier in [0,1].
type PositionMultiplier struct {
	Position   Position `json:"position"`
	Multiplier float64  `json:"multiplier"`
}

// PositionMultipliers is kept in declaration order so serialized output is stable.
type PositionMultipliers []PositionMultiplier

// Get returns the multiplier for a position, or 0 if absent.
func (m PositionMultipliers) Get(p Position) float64 {
	for _, pm := range m {
		if pm.Position == p {
			return pm.Multiplier
		}
	}
	return 0
}

type Performance string

const (
	PerformanceBelow   Performance = "Below Average"
	PerformanceAverage Performance = "Average"
	PerformanceAbove   Performance = "Above Average"
)

// STSScore is the categorical sit-to-stand classification.
type STSScore struct {
	Performance     Performance `json:"performance"`
	BenchmarkRange  string      `json:"benchmarkRange"`
	NormalizedScore float64     `json:"normalizedScore"`
}

type Scores struct {
	PainScore          float64     `json:"painScore"`
	SymptomScore       float64     `json:"symptomScore"`
	STSPerformance     Performance `json:"stsPerformance"`
	STSBenchmarkRange  string      `json:"stsBenchmarkRange"`
	STSNormalizedScore float64     `json:"stsNormalizedScore"`
	CombinedScore      float64     `json:"combinedScore"`
	ConflictResolved   bool        `json:"conflictResolved"`
}

// ScoredExercise is an exercise with the modifiers that produced its rank.
type ScoredExercise struct {
	Exercise            Exercise `json:"exercise"`
	DifficultyScore     float64  `json:"difficultyScore"`
	AlignmentModifier   float64  `json:"alignmentModifier"`
	FlexibilityModifier float64  `json:"flexibilityModifier"`
	FinalScore          float64  `json:"finalScore"`
}

// PositionRanking is one Layer-1 entry with its Layer-2 match count.
type PositionRanking struct {
	Rank          int      `json:"rank"`
	Position      Position `json:"position"`
	Multiplier    float64  `json:"multiplier"`
	ExerciseCount int      `json:"exerciseCount"`
}

type PositionRecommendation struct {
	Position           Position         `json:"position"`
	PositionMultiplier float64          `json:"positionMultiplier"`
	Exercises          []ScoredExercise `json:"exercises"`
}

type BiomechanicalFlags struct {
	CoreStabilityRequired bool `json:"coreStabilityRequired"`
	FlexibilityDeficit    bool `json:"flexibilityDeficit"`
	AlignmentIssue        bool `json:"alignmentIssue"`
}

// Result is built fresh per Calculate call.
type Result struct {
	PositionMultipliers PositionMultipliers      `json:"positionMultipliers"`
	AllPositionRankings []PositionRanking        `json:"allPositionRankings"`
	Scores              Scores                   `json:"scores"`
	Recommendations     []PositionRecommendation `json:"recommendations"`
	BiomechanicalFlags  BiomechanicalFlags       `json:"biomechanicalFlags"`
	Targets             []Target                 `json:"targets"`
	SectionScores       []SectionScore           `json:"sectionScores"`
}
