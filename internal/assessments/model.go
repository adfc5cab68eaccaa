package assessments

import (
	"time"

	"oaknee-backend/internal/recommend"
)

// Assessment is one stored submission with the recommendation computed for it.
type Assessment struct {
	ID            string                         `json:"id"`
	PatientID     string                         `json:"patientId"`
	Questionnaire recommend.QuestionnaireAnswers `json:"questionnaire"`
	STS           recommend.STSAssessment        `json:"sts"`
	Result        recommend.Result               `json:"result"`
	CreatedAt     time.Time                      `json:"createdAt"`
}

// Submission is the request body for submit and preview.
type Submission struct {
	PatientID     string             `json:"patientId" validate:"omitempty,max=128"`
	Questionnaire QuestionnaireInput `json:"questionnaire"`
	STS           STSInput           `json:"sts"`
}

type QuestionnaireInput struct {
	Responses map[string]int `json:"responses" validate:"required,dive,keys,required,max=8,endkeys,gte=0,lte=4"`
	ToeTouch  string         `json:"toe_touch_test" validate:"required,oneof=can cannot"`
}

type STSInput struct {
	RepetitionCount int    `json:"repetition_count" validate:"gte=0,lte=100"`
	Age             int    `json:"age" validate:"gte=0,lte=130"`
	Gender          string `json:"gender" validate:"required,oneof=male female"`
	KneeAlignment   string `json:"knee_alignment" validate:"required,oneof=normal valgus varus"`
	TrunkSway       string `json:"trunk_sway" validate:"required,oneof=present absent"`
	HipSway         string `json:"hip_sway" validate:"required,oneof=present absent"`
}

// EngineInputs converts a validated submission into engine types.
func (s Submission) EngineInputs() (recommend.QuestionnaireAnswers, recommend.STSAssessment) {
	return s.answers(), s.sts()
}

// answers converts validated input into engine types. Codes are lowercased;
// ValidateSubmission has already rejected codes that collide when folded.
func (s Submission) answers() recommend.QuestionnaireAnswers {
	responses, err := recommend.NormalizeResponses(s.Questionnaire.Responses)
	if err != nil {
		responses = map[string]int{}
	}
	return recommend.QuestionnaireAnswers{
		Responses: responses,
		ToeTouch:  recommend.ToeTouch(s.Questionnaire.ToeTouch),
	}
}

func (s Submission) sts() recommend.STSAssessment {
	return recommend.STSAssessment{
		RepetitionCount: s.STS.RepetitionCount,
		Age:             s.STS.Age,
		Gender:          recommend.Gender(s.STS.Gender),
		KneeAlignment:   recommend.KneeAlignment(s.STS.KneeAlignment),
		TrunkSway:       recommend.Sway(s.STS.TrunkSway),
		HipSway:         recommend.Sway(s.STS.HipSway),
	}
}
