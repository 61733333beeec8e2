package db_models

type ShortLink struct {
	BaseModel
	Code      string `gorm:"uniqueIndex;size:16"`
	TargetURL string
	DoctorID  string `gorm:"index"`
	Hits      int64
}
