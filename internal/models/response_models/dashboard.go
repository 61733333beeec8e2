package response_models

type DashboardStats struct {
	TotalLeads         int64            `json:"total_leads"`
	PartialSubmissions int64            `json:"partial_submissions"`
	LeadsByQuizType    map[string]int64 `json:"leads_by_quiz_type"`
	LeadsBySeverity    map[string]int64 `json:"leads_by_severity"`
}
