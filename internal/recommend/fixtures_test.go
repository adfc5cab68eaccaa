package recommend

func testCatalog() []Exercise {
	return []Exercise{
		{ID: 1, Name: "DL Squat", DifficultyLevel: 3,
			Positions: PositionFlags{DLStand: true},
			Muscles:   MuscleRecruitment{Quad: 5, Hamstring: 2, GluteMax: 3, HipFlexors: 1, GluteMedMin: 1, Adductors: 2}},
		{ID: 2, Name: "DL Hip Hinge", DifficultyLevel: 4, CoreIpsi: true,
			Positions: PositionFlags{DLStand: true},
			Muscles:   MuscleRecruitment{Quad: 2, Hamstring: 5, GluteMax: 4, GluteMedMin: 1, Adductors: 1}},
		{ID: 3, Name: "Backward Lunge", DifficultyLevel: 6, CoreIpsi: true,
			Positions: PositionFlags{SplitStand: true},
			Muscles:   MuscleRecruitment{Quad: 4, Hamstring: 5, GluteMax: 5, HipFlexors: 2, GluteMedMin: 3, Adductors: 2}},
		{ID: 4, Name: "Split Leg Squat", DifficultyLevel: 5, CoreIpsi: true,
			Positions: PositionFlags{SplitStand: true},
			Muscles:   MuscleRecruitment{Quad: 5, Hamstring: 3, GluteMax: 4, GluteMedMin: 2, Adductors: 3}},
		{ID: 5, Name: "SL RDL", DifficultyLevel: 8, CoreIpsi: true,
			Positions: PositionFlags{SLStand: true},
			Muscles:   MuscleRecruitment{Quad: 2, Hamstring: 5, GluteMax: 5, GluteMedMin: 4, Adductors: 2}},
		{ID: 6, Name: "Hip Hikes", DifficultyLevel: 7, CoreIpsi: true,
			Positions: PositionFlags{SLStand: true},
			Muscles:   MuscleRecruitment{Quad: 1, GluteMax: 2, GluteMedMin: 5, Adductors: 1}},
		{ID: 7, Name: "Glute Bridge", DifficultyLevel: 2,
			Positions: PositionFlags{SupineLying: true},
			Muscles:   MuscleRecruitment{Quad: 1, Hamstring: 3, GluteMax: 5, GluteMedMin: 2, Adductors: 1}},
		{ID: 8, Name: "Single Leg Glute Bridge", DifficultyLevel: 4, CoreIpsi: true,
			Positions: PositionFlags{SupineLying: true},
			Muscles:   MuscleRecruitment{Quad: 1, Hamstring: 4, GluteMax: 5, GluteMedMin: 3, Adductors: 1}},
		{ID: 9, Name: "Clamshell", DifficultyLevel: 2,
			Positions: PositionFlags{SideLying: true},
			Muscles:   MuscleRecruitment{GluteMax: 2, GluteMedMin: 5}},
		{ID: 10, Name: "Side Plank Clamshell", DifficultyLevel: 5, CoreIpsi: true, CoreContra: true,
			Positions: PositionFlags{SideLying: true},
			Muscles:   MuscleRecruitment{GluteMax: 3, GluteMedMin: 5}},
		{ID: 11, Name: "Birddog", DifficultyLevel: 4, CoreIpsi: true, CoreContra: true,
			Positions: PositionFlags{Quadruped: true},
			Muscles:   MuscleRecruitment{Hamstring: 2, GluteMax: 4, GluteMedMin: 2}},
	}
}

var allCodes = []string{
	"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12", "f13", "f14", "f15", "f16", "f17",
	"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9",
	"sp1", "sp2", "sp3", "sp4", "sp5",
	"s1", "s2", "s3", "s4", "s5",
	"st1", "st2",
	"q1", "q2", "q3", "q4",
}

func uniformAnswers(value int, toeTouch ToeTouch) QuestionnaireAnswers {
	responses := make(map[string]int, len(allCodes))
	for _, code := range allCodes {
		responses[code] = value
	}
	return QuestionnaireAnswers{Responses: responses, ToeTouch: toeTouch}
}

func normalSTS() STSAssessment {
	return STSAssessment{
		RepetitionCount: 12,
		Age:             65,
		Gender:          GenderFemale,
		KneeAlignment:   AlignmentNormal,
		TrunkSway:       SwayAbsent,
		HipSway:         SwayAbsent,
	}
}
