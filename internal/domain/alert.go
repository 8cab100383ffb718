package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPayload is pushed to the ops webhook for every HIGH priority
// live-crime ticket.
type AlertPayload struct {
	TicketID   uuid.UUID     `json:"ticket_id"`
	Category   CrimeCategory `json:"category"`
	InProgress bool          `json:"in_progress"`
	Location   *GeoLocation  `json:"location,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}
