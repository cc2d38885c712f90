package dto

type AdminMessagesResponse struct {
	Messages []ContactMessage `json:"messages"`
	Total    int              `json:"total"`
	Showing  int              `json:"showing"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
	HasMore  bool             `json:"has_more"`
}

type StatusUpdateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
	NewStatus string `json:"new_status"`
}

type DeleteMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
}

type DashboardStatsResponse struct {
	TotalMessages   int            `json:"total_messages"`
	Recent7Days     int            `json:"recent_messages_7_days"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	LastUpdated     string         `json:"last_updated"`
}

type ExportResponse struct {
	ExportDate    string           `json:"export_date"`
	TotalMessages int              `json:"total_messages"`
	Messages      []ContactMessage `json:"messages"`
}
