package db_models

import "github.com/google/uuid"

// CustomQuiz is a doctor-authored instrument. Unlike the built-in
// instruments its options carry arbitrary point values, and severity is
// banded on percent-of-max rather than published thresholds.
type CustomQuiz struct {
	BaseModel
	DoctorID    uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string

	Questions []CustomQuestion `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type CustomQuestion struct {
	BaseModel
	QuizID   uuid.UUID `gorm:"type:uuid;index"`
	Prompt   string
	Position int

	Options []CustomOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type CustomOption struct {
	BaseModel
	QuestionID uuid.UUID `gorm:"type:uuid;index"`
	Label      string
	Points     int
	Position   int
}
