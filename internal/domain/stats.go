package domain

type TicketStats struct {
	Total      int64            `json:"total"`
	InProgress int64            `json:"in_progress"`
	ByCategory map[string]int64 `json:"by_category"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 день max
}
