package workers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"liveCrime/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeOrphanLister struct {
	orphans []*domain.StoredEvidence
	deleted [][]uuid.UUID
}

func (f *fakeOrphanLister) ListOrphans(ctx context.Context, olderThan time.Time) ([]*domain.StoredEvidence, error) {
	return f.orphans, nil
}

func (f *fakeOrphanLister) Delete(ctx context.Context, ids []uuid.UUID) error {
	f.deleted = append(f.deleted, ids)
	return nil
}

type fakeBlobDeleter struct {
	deleted []string
	failOn  string
}

func (f *fakeBlobDeleter) Delete(ctx context.Context, key string) error {
	if key == f.failOn {
		return errors.New("s3 unavailable")
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func TestEvidenceGC_SweepDeletesOrphans(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := &fakeOrphanLister{orphans: []*domain.StoredEvidence{
		{ID: a, ObjectKey: "evidence/2026/08/30/x/clip.webm"},
		{ID: b, ObjectKey: "evidence/2026/08/30/y/shot.png"},
	}}
	blobs := &fakeBlobDeleter{}

	gc := NewEvidenceGC(newTestLogger(), rows, blobs, time.Hour, time.Hour)
	gc.sweep(context.Background())

	require.Len(t, blobs.deleted, 2)
	require.Len(t, rows.deleted, 1)
	require.ElementsMatch(t, []uuid.UUID{a, b}, rows.deleted[0])
}

func TestEvidenceGC_KeepsRowWhenBlobDeleteFails(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	rows := &fakeOrphanLister{orphans: []*domain.StoredEvidence{
		{ID: a, ObjectKey: "evidence/keep.webm"},
		{ID: b, ObjectKey: "evidence/gone.png"},
	}}
	blobs := &fakeBlobDeleter{failOn: "evidence/keep.webm"}

	gc := NewEvidenceGC(newTestLogger(), rows, blobs, time.Hour, time.Hour)
	gc.sweep(context.Background())

	require.Len(t, rows.deleted, 1)
	require.Equal(t, []uuid.UUID{b}, rows.deleted[0], "row with live blob must survive the sweep")
}

func TestEvidenceGC_NoOrphansNoDeletes(t *testing.T) {
	rows := &fakeOrphanLister{}
	blobs := &fakeBlobDeleter{}

	gc := NewEvidenceGC(newTestLogger(), rows, blobs, time.Hour, time.Hour)
	gc.sweep(context.Background())

	require.Empty(t, blobs.deleted)
	require.Empty(t, rows.deleted)
}
