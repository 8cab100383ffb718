package postgres

import (
	"context"
	"log/slog"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) TicketStats(ctx context.Context, minutes int) (*domain.TicketStats, error) {
	const op = "postgres.Stats.TicketStats"

	if minutes <= 0 {
		minutes = 60
	}

	const query = `
		SELECT COALESCE(crime_details->>'category', 'OTHER') AS category,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE (crime_details->>'inProgress')::boolean) AS in_progress
		FROM tickets
		WHERE created_at >= now() - make_interval(mins => $1)
		GROUP BY 1
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := &domain.TicketStats{ByCategory: make(map[string]int64)}
	for rows.Next() {
		var category string
		var total, inProgress int64
		if err := rows.Scan(&category, &total, &inProgress); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		stats.ByCategory[category] = total
		stats.Total += total
		stats.InProgress += inProgress
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
