package service

import (
	"context"
	"time"

	"liveCrime/internal/domain"

	"github.com/google/uuid"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	List(ctx context.Context, page, limit int) ([]*domain.Ticket, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
}

type EvidenceRepository interface {
	InsertBatch(ctx context.Context, rows []*domain.StoredEvidence) error
	MarkReferenced(ctx context.Context, ticketID uuid.UUID, urls []string) error
}

type StatsRepository interface {
	TicketStats(ctx context.Context, minutes int) (*domain.TicketStats, error)
}

type BlobStore interface {
	Put(ctx context.Context, key, mime string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type TicketCache interface {
	GetRecent(ctx context.Context) (*domain.ListTicketsResponse, error)
	SetRecent(ctx context.Context, resp *domain.ListTicketsResponse, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// TicketService owns the serving side of the ticket contract.
type TicketService interface {
	Create(ctx context.Context, req domain.CreateTicketRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) (domain.ListTicketsResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
}

// EvidenceService persists evidence batches and hands back one
// reference URL per item, in item order.
type EvidenceService interface {
	StoreBatch(ctx context.Context, items []domain.EvidenceItem) ([]string, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TicketStats, error)
}

type Service struct {
	TicketService   TicketService
	EvidenceService EvidenceService
	StatsService    StatsService
}

func NewService(
	ticketService TicketService,
	evidenceService EvidenceService,
	statsService StatsService,
) *Service {
	return &Service{
		TicketService:   ticketService,
		EvidenceService: evidenceService,
		StatsService:    statsService,
	}
}
