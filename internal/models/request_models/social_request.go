package request_models

type SocialGenerateRequest struct {
	PracticeName string   `json:"practice_name" binding:"required"`
	QuizType     string   `json:"quiz_type" binding:"required"`
	Platforms    []string `json:"platforms" binding:"required,min=1"` // "facebook", "instagram", "linkedin"
	Topic        string   `json:"topic"`
}
