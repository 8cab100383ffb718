package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"liveCrime/internal/domain"
)

type OrphanLister interface {
	ListOrphans(ctx context.Context, olderThan time.Time) ([]*domain.StoredEvidence, error)
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type BlobDeleter interface {
	Delete(ctx context.Context, key string) error
}

// EvidenceGC sweeps evidence rows that were uploaded but never
// referenced by a ticket. Blobs go first; a row is only removed once
// its blob is gone, so a failed blob delete is retried next sweep.
type EvidenceGC struct {
	logger    *slog.Logger
	rows      OrphanLister
	blobs     BlobDeleter
	interval  time.Duration
	orphanAge time.Duration
}

func NewEvidenceGC(logger *slog.Logger, rows OrphanLister, blobs BlobDeleter, interval, orphanAge time.Duration) *EvidenceGC {
	return &EvidenceGC{
		logger:    logger,
		rows:      rows,
		blobs:     blobs,
		interval:  interval,
		orphanAge: orphanAge,
	}
}

func (w *EvidenceGC) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("evidence GC started",
		slog.Duration("interval", w.interval),
		slog.Duration("orphan_age", w.orphanAge),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("evidence GC stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *EvidenceGC) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-w.orphanAge)

	orphans, err := w.rows.ListOrphans(ctx, cutoff)
	if err != nil {
		w.logger.Error("orphan listing failed", slog.Any("error", err))
		return
	}
	if len(orphans) == 0 {
		return
	}

	deletable := make([]uuid.UUID, 0, len(orphans))
	for _, o := range orphans {
		if err := w.blobs.Delete(ctx, o.ObjectKey); err != nil {
			w.logger.Warn("orphan blob delete failed",
				slog.String("key", o.ObjectKey),
				slog.Any("error", err),
			)
			continue
		}
		deletable = append(deletable, o.ID)
	}

	if len(deletable) == 0 {
		return
	}

	if err := w.rows.Delete(ctx, deletable); err != nil {
		w.logger.Error("orphan row delete failed", slog.Any("error", err))
		return
	}

	w.logger.Info("orphan evidence swept",
		slog.Int("found", len(orphans)),
		slog.Int("deleted", len(deletable)),
	)
}
