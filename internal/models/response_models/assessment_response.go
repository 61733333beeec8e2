package response_models

type QuestionView struct {
	Index          int      `json:"index"`
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	TotalQuestions int      `json:"total_questions"`
}

type TriageView struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type ResultView struct {
	Score          int    `json:"score"`
	MaxScore       int    `json:"max_score"`
	Severity       string `json:"severity"`
	Interpretation string `json:"interpretation"`
}

// AssessmentStateResponse is the single chat-style payload the widget
// renders after every interaction: whichever of Triage, Question, Result
// is non-nil drives the next screen, with Prompt carrying contact-step
// questions and validation re-prompts.
type AssessmentStateResponse struct {
	SessionID   string        `json:"session_id"`
	QuizType    string        `json:"quiz_type,omitempty"`
	Phase       string        `json:"phase"`
	ContactStep string        `json:"contact_step,omitempty"`
	Triage      *TriageView   `json:"triage,omitempty"`
	Question    *QuestionView `json:"question,omitempty"`
	Result      *ResultView   `json:"result,omitempty"`
	Prompt      string        `json:"prompt,omitempty"`
}
