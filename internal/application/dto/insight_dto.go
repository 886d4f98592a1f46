package dto

// InsightResponse representación API de un PulseInsight.
type InsightResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`     // alert, opportunity, tip, achievement
	Category    string `json:"category"` // sales, customers, inventory, finance
	Priority    string `json:"priority"` // low, medium, high, critical
	ActionLabel string `json:"action_label,omitempty"`
	InsightDate string `json:"insight_date"` // YYYY-MM-DD
	IsRead      bool   `json:"is_read"`
	IsDismissed bool   `json:"is_dismissed"`
}

// GenerateInsightsResponse respuesta de POST /api/insights/generate: el batch
// recién creado, en orden determinista por categoría.
type GenerateInsightsResponse struct {
	Insights []InsightResponse `json:"insights"`
	Count    int               `json:"count"`
}

// InsightListResponse respuesta de GET /api/insights (feed no descartado).
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
	Count    int               `json:"count"`
}
