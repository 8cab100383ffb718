package service

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
	"liveCrime/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeTicketRepo struct {
	created   []*domain.Ticket
	createErr error
	listed    []*domain.Ticket
	total     int64
}

func (f *fakeTicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTicketRepo) List(ctx context.Context, page, limit int) ([]*domain.Ticket, int64, error) {
	return f.listed, f.total, nil
}

func (f *fakeTicketRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	for _, t := range f.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, e.ErrNotFound
}

type fakeEvidenceRepo struct {
	marked    map[uuid.UUID][]string
	markErr   error
	inserted  [][]*domain.StoredEvidence
	insertErr error
}

func (f *fakeEvidenceRepo) InsertBatch(ctx context.Context, rows []*domain.StoredEvidence) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, rows)
	return nil
}

func (f *fakeEvidenceRepo) MarkReferenced(ctx context.Context, ticketID uuid.UUID, urls []string) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.marked == nil {
		f.marked = make(map[uuid.UUID][]string)
	}
	f.marked[ticketID] = urls
	return nil
}

type fakeCache struct {
	recent      *domain.ListTicketsResponse
	invalidated int
	sets        int
}

func (f *fakeCache) GetRecent(ctx context.Context) (*domain.ListTicketsResponse, error) {
	return f.recent, nil
}

func (f *fakeCache) SetRecent(ctx context.Context, resp *domain.ListTicketsResponse, ttl time.Duration) error {
	f.recent = resp
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.recent = nil
	f.invalidated++
	return nil
}

type fakeAlertQueue struct {
	enqueued []domain.AlertPayload
	err      error
}

func (f *fakeAlertQueue) Enqueue(ctx context.Context, p domain.AlertPayload) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, p)
	return nil
}

func validCreateRequest() domain.CreateTicketRequest {
	return domain.CreateTicketRequest{
		Type:        domain.TicketLiveCrime,
		Subject:     "Live Crime Report: FRAUD",
		Description: "Someone attempted to withdraw funds from my account using a cloned card",
		Priority:    domain.PriorityHigh,
		CrimeDetails: &domain.CrimeDetails{
			Category:     domain.CategoryFraud,
			InProgress:   true,
			Location:     &domain.GeoLocation{Latitude: 6.5244, Longitude: 3.3792, Address: "Lagos, Nigeria"},
			EvidenceURLs: []string{"https://gw/evidence/a"},
		},
	}
}

func TestTicketService_Create_PersistsAndAlerts(t *testing.T) {
	tickets := &fakeTicketRepo{}
	evidence := &fakeEvidenceRepo{}
	cache := &fakeCache{recent: &domain.ListTicketsResponse{}}
	alerts := &fakeAlertQueue{}

	svc := NewTicketService(tickets, evidence, cache, alerts, newTestLogger())

	id, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	require.Len(t, tickets.created, 1)
	created := tickets.created[0]
	require.Equal(t, domain.PriorityHigh, created.Priority)
	require.Equal(t, domain.TicketOpen, created.Status)

	require.Equal(t, []string{"https://gw/evidence/a"}, evidence.marked[id])
	require.Equal(t, 1, cache.invalidated)

	require.Len(t, alerts.enqueued, 1)
	require.Equal(t, id, alerts.enqueued[0].TicketID)
	require.True(t, alerts.enqueued[0].InProgress)
}

func TestTicketService_Create_ForcesHighPriority(t *testing.T) {
	tickets := &fakeTicketRepo{}
	svc := NewTicketService(tickets, &fakeEvidenceRepo{}, &fakeCache{}, &fakeAlertQueue{}, newTestLogger())

	req := validCreateRequest()
	req.Priority = domain.PriorityLow

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, domain.PriorityHigh, tickets.created[0].Priority)
}

func TestTicketService_Create_InvalidRequest(t *testing.T) {
	svc := NewTicketService(&fakeTicketRepo{}, &fakeEvidenceRepo{}, &fakeCache{}, &fakeAlertQueue{}, newTestLogger())

	req := validCreateRequest()
	req.Description = "too short"

	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestTicketService_Create_RepoFailurePropagates(t *testing.T) {
	boom := errors.New("db down")
	tickets := &fakeTicketRepo{createErr: boom}
	alerts := &fakeAlertQueue{}
	svc := NewTicketService(tickets, &fakeEvidenceRepo{}, &fakeCache{}, alerts, newTestLogger())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, boom)
	require.Empty(t, alerts.enqueued, "no alert for unpersisted ticket")
}

func TestTicketService_Create_AlertFailureIsNotFatal(t *testing.T) {
	tickets := &fakeTicketRepo{}
	alerts := &fakeAlertQueue{err: errors.New("redis down")}
	svc := NewTicketService(tickets, &fakeEvidenceRepo{}, &fakeCache{}, alerts, newTestLogger())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Len(t, tickets.created, 1)
}

func TestTicketService_List_FirstPageUsesCache(t *testing.T) {
	cached := &domain.ListTicketsResponse{Page: 1, Limit: 20, Total: 3}
	cache := &fakeCache{recent: cached}
	repo := &fakeTicketRepo{total: 99}

	svc := NewTicketService(repo, &fakeEvidenceRepo{}, cache, &fakeAlertQueue{}, newTestLogger())

	out, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(3), out.Total, "cached page must win")
}

func TestTicketService_List_CacheMissFillsCache(t *testing.T) {
	id := uuid.New()
	repo := &fakeTicketRepo{
		listed: []*domain.Ticket{{ID: id, Subject: "Live Crime Report: SCAM"}},
		total:  1,
	}
	cache := &fakeCache{}

	svc := NewTicketService(repo, &fakeEvidenceRepo{}, cache, &fakeAlertQueue{}, newTestLogger())

	out, err := svc.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Len(t, out.Tickets, 1)
	require.Equal(t, id, out.Tickets[0].ID)
	require.Equal(t, 1, cache.sets)
}

func TestTicketService_List_DeepPagesBypassCache(t *testing.T) {
	cache := &fakeCache{recent: &domain.ListTicketsResponse{Total: 3}}
	repo := &fakeTicketRepo{total: 42}

	svc := NewTicketService(repo, &fakeEvidenceRepo{}, cache, &fakeAlertQueue{}, newTestLogger())

	out, err := svc.List(context.Background(), 2, 20)
	require.NoError(t, err)
	require.Equal(t, int64(42), out.Total)
	require.Equal(t, 0, cache.sets)
}
