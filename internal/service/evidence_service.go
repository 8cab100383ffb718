package service

import (
	"context"
	"strings"

	"log/slog"

	"liveCrime/internal/domain"
	"liveCrime/internal/storage/s3"
	"liveCrime/pkg/e"
)

type evidenceService struct {
	blobs      BlobStore
	repo       EvidenceRepository
	publicBase string
	logger     *slog.Logger
}

func NewEvidenceService(blobs BlobStore, repo EvidenceRepository, publicBase string, logger *slog.Logger) EvidenceService {
	return &evidenceService{
		blobs:      blobs,
		repo:       repo,
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger,
	}
}

// StoreBatch persists the whole batch or nothing the caller can use:
// blobs go to S3 first, then the metadata rows in one batch. On a row
// failure the uploaded blobs are deleted best-effort so the bucket does
// not accumulate rowless objects.
func (s *evidenceService) StoreBatch(ctx context.Context, items []domain.EvidenceItem) ([]string, error) {
	if len(items) == 0 {
		return nil, e.Wrap("service.StoreBatch", e.ErrInvalidInput)
	}

	rows := make([]*domain.StoredEvidence, 0, len(items))
	urls := make([]string, 0, len(items))

	for _, item := range items {
		key := s3.StorageKey(item.Name)
		if err := s.blobs.Put(ctx, key, item.MIME, item.Data); err != nil {
			s.cleanup(ctx, rows)
			return nil, e.Wrap("service.StoreBatch", err)
		}

		url := s.publicBase + "/" + key
		rows = append(rows, &domain.StoredEvidence{
			ObjectKey: key,
			URL:       url,
			MIME:      item.MIME,
			Size:      int64(len(item.Data)),
		})
		urls = append(urls, url)
	}

	if err := s.repo.InsertBatch(ctx, rows); err != nil {
		s.cleanup(ctx, rows)
		return nil, e.Wrap("service.StoreBatch", err)
	}

	s.logger.Info("evidence batch stored", slog.Int("items", len(items)))
	return urls, nil
}

func (s *evidenceService) cleanup(ctx context.Context, rows []*domain.StoredEvidence) {
	for _, row := range rows {
		if err := s.blobs.Delete(ctx, row.ObjectKey); err != nil {
			s.logger.Warn("blob cleanup failed", slog.String("key", row.ObjectKey), slog.Any("error", err))
		}
	}
}
