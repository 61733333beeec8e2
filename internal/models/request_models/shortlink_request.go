package request_models

type CreateShortLinkRequest struct {
	TargetURL string `json:"target_url" binding:"required,url"`
	DoctorID  string `json:"doctor_id"`
}
