package postgres

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
	ListOrphans(ctx context.Context, olderThan time.Time) ([]*domain.StoredEvidence, error)
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type StatsRepository interface {
	TicketStats(ctx context.Context, minutes int) (*domain.TicketStats, error)
}

func (p *Postgres) Tickets() TicketRepository     { return p.Ticket }
func (p *Postgres) Evidences() EvidenceRepository { return p.Evidence }
func (p *Postgres) Stats() StatsRepository        { return p.Stat }
