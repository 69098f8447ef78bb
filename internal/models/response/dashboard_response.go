package response

// DashboardStatisticsResponse represents dashboard statistics for one month
type DashboardStatisticsResponse struct {
	Month          int   `json:"month" example:"10"`
	Year           int   `json:"year" example:"2026"`
	Total          int64 `json:"total" example:"20"`
	Paid           int64 `json:"paid" example:"15"`
	Unpaid         int64 `json:"unpaid" example:"5"`
	TotalCollected int64 `json:"total_collected" example:"3000"`
	TotalPending   int64 `json:"total_pending" example:"1000"`
}
