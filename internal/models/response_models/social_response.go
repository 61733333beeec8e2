package response_models

type SocialPost struct {
	Platform string   `json:"platform"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
}

type SocialContentResponse struct {
	Posts []SocialPost `json:"posts"`
}
