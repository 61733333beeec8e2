package request_models

type SEOAnalyzeRequest struct {
	URL string `json:"url" binding:"required,url"`
}
