package request_models

type CreateCustomQuizRequest struct {
	Title       string                  `json:"title" binding:"required"`
	Description string                  `json:"description"`
	Questions   []CustomQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

type CustomQuestionRequest struct {
	Prompt  string                `json:"prompt" binding:"required"`
	Options []CustomOptionRequest `json:"options" binding:"required,min=2,dive"`
}

type CustomOptionRequest struct {
	Label  string `json:"label" binding:"required"`
	Points int    `json:"points" binding:"min=0"`
}
