package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"liveCrime/internal/api/handlers/http/admin"
	mock_admin "liveCrime/internal/api/handlers/http/admin/mocks"
	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func TestAdminTicketList_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tickets := mock_admin.NewMockTicketReader(ctrl)
	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), tickets, stats)

	id := uuid.New()
	tickets.EXPECT().
		List(gomock.Any(), 2, 50).
		Return(domain.ListTicketsResponse{
			Tickets: []domain.Ticket{{ID: id, Subject: "Live Crime Report: ROBBERY"}},
			Page:    2,
			Limit:   50,
			Total:   120,
		}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tickets?page=2&limit=50", nil)
	rr := httptest.NewRecorder()

	h.AdminTicketList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.ListTicketsResponse](t, rr)
	if got.Total != 120 || len(got.Tickets) != 1 || got.Tickets[0].ID != id {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestAdminTicketList_LimitCapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tickets := mock_admin.NewMockTicketReader(ctrl)
	h := admin.NewHandler(newTestLogger(), tickets, mock_admin.NewMockStatsGetter(ctrl))

	tickets.EXPECT().
		List(gomock.Any(), 1, 100).
		Return(domain.ListTicketsResponse{Page: 1, Limit: 100}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tickets?limit=5000", nil)
	rr := httptest.NewRecorder()

	h.AdminTicketList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAdminTicketGet_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tickets := mock_admin.NewMockTicketReader(ctrl)
	h := admin.NewHandler(newTestLogger(), tickets, mock_admin.NewMockStatsGetter(ctrl))

	id := uuid.New()
	tickets.EXPECT().
		Get(gomock.Any(), id).
		Return(&domain.Ticket{ID: id, Subject: "Live Crime Report: SCAM"}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tickets/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminTicketGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminTicketGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockTicketReader(ctrl), mock_admin.NewMockStatsGetter(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tickets/not-a-uuid", nil)
	req = addChiURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.AdminTicketGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestAdminTicketGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tickets := mock_admin.NewMockTicketReader(ctrl)
	h := admin.NewHandler(newTestLogger(), tickets, mock_admin.NewMockStatsGetter(ctrl))

	id := uuid.New()
	tickets.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, e.ErrNotFound).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/tickets/"+id.String(), nil)
	req = addChiURLParam(req, "id", id.String())
	rr := httptest.NewRecorder()

	h.AdminTicketGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestAdminStats_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockTicketReader(ctrl), stats)

	stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 30}).
		Return(&domain.TicketStats{Total: 7, InProgress: 3, ByCategory: map[string]int64{"FRAUD": 4}}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes=30", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d, body=%s", rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.TicketStats](t, rr)
	if got.Total != 7 || got.ByCategory["FRAUD"] != 4 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestAdminStats_DefaultsTo60Minutes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockTicketReader(ctrl), stats)

	stats.EXPECT().
		GetStats(gomock.Any(), domain.StatsRequest{Minutes: 60}).
		Return(&domain.TicketStats{}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func TestAdminStats_InvalidMinutes_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockTicketReader(ctrl), mock_admin.NewMockStatsGetter(ctrl))

	for _, minutes := range []string{"0", "-5", "100000", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats?minutes="+minutes, nil)
		rr := httptest.NewRecorder()

		h.AdminStats(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("minutes=%s: expected 400 got %d", minutes, rr.Code)
		}
	}
}

func TestAdminStats_ServiceError_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_admin.NewMockStatsGetter(ctrl)
	h := admin.NewHandler(newTestLogger(), mock_admin.NewMockTicketReader(ctrl), stats)

	stats.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pg down")).
		Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	h.AdminStats(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
}
