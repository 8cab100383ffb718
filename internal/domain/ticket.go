package domain

import (
	"time"

	"github.com/google/uuid"
)

type TicketType string

const (
	TicketLiveCrime TicketType = "LIVE_CRIME"
)

type TicketPriority string

const (
	PriorityHigh   TicketPriority = "HIGH"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityLow    TicketPriority = "LOW"
)

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

type CrimeCategory string

const (
	CategoryRobbery       CrimeCategory = "ROBBERY"
	CategoryFraud         CrimeCategory = "FRAUD"
	CategoryCybercrime    CrimeCategory = "CYBERCRIME"
	CategoryScam          CrimeCategory = "SCAM"
	CategoryImpersonation CrimeCategory = "IMPERSONATION"
	CategoryOther         CrimeCategory = "OTHER"
)

type CrimeDetails struct {
	Category          CrimeCategory `json:"category" validate:"required,crime_category"`
	Description       string        `json:"description"`
	InProgress        bool          `json:"inProgress"`
	EmergencyContacts []string      `json:"emergencyContacts,omitempty"`
	Location          *GeoLocation  `json:"location" validate:"required"`
	EvidenceURLs      []string      `json:"evidenceUrls"`
}

type Ticket struct {
	ID           uuid.UUID      `json:"id"`
	Type         TicketType     `json:"type"`
	Subject      string         `json:"subject"`
	Description  string         `json:"description"`
	Priority     TicketPriority `json:"priority"`
	Status       TicketStatus   `json:"status"`
	CrimeDetails *CrimeDetails  `json:"crimeDetails,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
