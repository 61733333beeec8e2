package db_models

// PartialSubmission is the best-effort placeholder recorded after a
// visitor's first answer, so abandoned runs are still visible on the
// dashboard.
type PartialSubmission struct {
	BaseModel
	QuizType    string
	DoctorID    string `gorm:"index"`
	PhysicianID string
	LeadSource  string
	IsPartial   bool `gorm:"default:true"`
}
