package request_models

// RoutingContext carries the attribution keys captured from quiz URL
// query parameters at session start. It is threaded explicitly through
// the assessment session into the lead record instead of being re-read
// per request.
type RoutingContext struct {
	DoctorID     string `json:"doctor_id"`
	PhysicianID  string `json:"physician_id"`
	LeadSource   string `json:"lead_source"`
	UTMSource    string `json:"utm_source"`
	UTMMedium    string `json:"utm_medium"`
	UTMCampaign  string `json:"utm_campaign"`
	PracticeName string `json:"practice_name"`
}

type AnswerRequest struct {
	QuestionIndex int `json:"question_index" binding:"min=0"`
	AnswerIndex   int `json:"answer_index" binding:"min=0"`
}

type ContactRequest struct {
	Value string `json:"value" binding:"required"`
}

type TriageRequest struct {
	OptionIndex int `json:"option_index" binding:"min=0"`
}
