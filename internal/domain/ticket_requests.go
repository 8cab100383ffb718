package domain

type CreateTicketRequest struct {
	Type         TicketType     `json:"type" validate:"required,oneof=LIVE_CRIME"`
	Subject      string         `json:"subject" validate:"required"`
	Description  string         `json:"description" validate:"required,min=20"`
	Priority     TicketPriority `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	CrimeDetails *CrimeDetails  `json:"crimeDetails" validate:"required"`
}

type CreateTicketResponse struct {
	ID string `json:"id"`
}

type ListTicketsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListTicketsResponse struct {
	Tickets []Ticket `json:"tickets"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int64    `json:"total"`
}
