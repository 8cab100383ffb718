package postgres

import (
	"context"
	"log/slog"
	"time"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EvidenceRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEvidenceRepo(pool *pgxpool.Pool, logger *slog.Logger) *EvidenceRepo {
	return &EvidenceRepo{pool: pool, logger: logger}
}

func (p *EvidenceRepo) InsertBatch(ctx context.Context, rows []*domain.StoredEvidence) error {
	const op = "postgres.Evidence.InsertBatch"

	const query = `
		INSERT INTO evidence (id, object_key, url, mime, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	batch := &pgx.Batch{}
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now().UTC()
		}
		batch.Queue(query, row.ID, row.ObjectKey, row.URL, row.MIME, row.Size, row.CreatedAt)
	}

	br := p.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range rows {
		if _, err := br.Exec(); err != nil {
			p.logger.Error("db batch exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
	}

	return nil
}

// MarkReferenced binds already-uploaded blobs to the ticket that embeds
// their URLs, taking them out of the orphan sweep.
func (p *EvidenceRepo) MarkReferenced(ctx context.Context, ticketID uuid.UUID, urls []string) error {
	const op = "postgres.Evidence.MarkReferenced"

	if len(urls) == 0 {
		return nil
	}

	const query = `UPDATE evidence SET ticket_id = $1 WHERE url = ANY($2)`

	if _, err := p.pool.Exec(ctx, query, ticketID, urls); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *EvidenceRepo) ListOrphans(ctx context.Context, olderThan time.Time) ([]*domain.StoredEvidence, error) {
	const op = "postgres.Evidence.ListOrphans"

	const query = `
		SELECT id, object_key, url, mime, size, ticket_id, created_at
		FROM evidence
		WHERE ticket_id IS NULL AND created_at < $1
		ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query, olderThan)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var out []*domain.StoredEvidence
	for rows.Next() {
		var ev domain.StoredEvidence
		if err := rows.Scan(&ev.ID, &ev.ObjectKey, &ev.URL, &ev.MIME, &ev.Size, &ev.TicketID, &ev.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &ev)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

func (p *EvidenceRepo) Delete(ctx context.Context, ids []uuid.UUID) error {
	const op = "postgres.Evidence.Delete"

	if len(ids) == 0 {
		return nil
	}

	const query = `DELETE FROM evidence WHERE id = ANY($1)`

	if _, err := p.pool.Exec(ctx, query, ids); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}
