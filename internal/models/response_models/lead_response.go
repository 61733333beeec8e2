package response_models

type LeadView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	QuizType    string   `json:"quiz_type"`
	Score       int      `json:"score"`
	Severity    string   `json:"severity"`
	Answers     []string `json:"answers"`
	LeadSource  string   `json:"lead_source"`
	SubmittedAt string   `json:"submitted_at"`
}
