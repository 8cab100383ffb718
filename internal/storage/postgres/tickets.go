package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTicketRepo(pool *pgxpool.Pool, logger *slog.Logger) *TicketRepo {
	return &TicketRepo{pool: pool, logger: logger}
}

func (p *TicketRepo) Create(ctx context.Context, ticket *domain.Ticket) error {
	const op = "postgres.Ticket.Create"

	const query = `
		INSERT INTO tickets (id, type, subject, description, priority, status, crime_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now().UTC()
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketOpen
	}

	var details []byte
	if ticket.CrimeDetails != nil {
		b, err := json.Marshal(ticket.CrimeDetails)
		if err != nil {
			return e.Wrap(op, err)
		}
		details = b
	}

	_, err := p.pool.Exec(ctx, query,
		ticket.ID,
		ticket.Type,
		ticket.Subject,
		ticket.Description,
		ticket.Priority,
		ticket.Status,
		details,
		ticket.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *TicketRepo) List(ctx context.Context, page, limit int) ([]*domain.Ticket, int64, error) {
	const op = "postgres.Ticket.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM tickets`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT id, type, subject, description, priority, status, crime_details, created_at
		FROM tickets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var tickets []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return tickets, total, nil
}

func (p *TicketRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	const op = "postgres.Ticket.Get"

	const query = `
		SELECT id, type, subject, description, priority, status, crime_details, created_at
		FROM tickets
		WHERE id = $1
	`

	row := p.pool.QueryRow(ctx, query, id)
	t, err := scanTicket(row.Scan)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return t, nil
}

func scanTicket(scan func(dest ...any) error) (*domain.Ticket, error) {
	var t domain.Ticket
	var details []byte

	if err := scan(
		&t.ID,
		&t.Type,
		&t.Subject,
		&t.Description,
		&t.Priority,
		&t.Status,
		&details,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}

	if len(details) > 0 {
		var cd domain.CrimeDetails
		if err := json.Unmarshal(details, &cd); err != nil {
			return nil, err
		}
		t.CrimeDetails = &cd
	}

	return &t, nil
}
