package db_models

// Doctor is a dashboard account. Leads reference doctors by the string
// doctor_id carried in quiz URLs, so there is no gorm association there.
type Doctor struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	PracticeName string
	Role         string

	CustomQuizzes []CustomQuiz `gorm:"foreignKey:DoctorID"`
}
