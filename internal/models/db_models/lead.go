package db_models

import (
	"time"

	"github.com/lib/pq"
)

// Lead is the contact record produced when a visitor completes an
// assessment and supplies their contact information. Answers keep the
// chosen option text per question in instrument order.
type Lead struct {
	BaseModel
	Name        string
	Email       string
	Phone       string
	QuizType    string
	Score       int
	Severity    string
	Answers     pq.StringArray `gorm:"type:text[]"`
	DoctorID    string         `gorm:"index"`
	PhysicianID string
	LeadSource  string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	SubmittedAt time.Time
}
