package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

func TestPositionClient_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]float64{"latitude": 6.5244, "longitude": 3.3792})
	}))
	defer srv.Close()

	c := NewPositionClient(srv.URL, time.Second)
	lat, lng, err := c.Position(context.Background())
	require.NoError(t, err)
	require.Equal(t, 6.5244, lat)
	require.Equal(t, 3.3792, lng)
}

func TestPositionClient_EmptyURLIsUnavailable(t *testing.T) {
	c := NewPositionClient("", time.Second)
	_, _, err := c.Position(context.Background())
	require.ErrorIs(t, err, e.ErrCapabilityUnavailable)
}

func TestPositionClient_DeniedIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewPositionClient(srv.URL, time.Second)
	_, _, err := c.Position(context.Background())
	require.ErrorIs(t, err, e.ErrCapabilityUnavailable)
}

func TestGeocoder_Reverse_PassesCoordinatesLiterally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reverse", r.URL.Path)
		require.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		require.Equal(t, "6.5244", r.URL.Query().Get("lat"))
		require.Equal(t, "3.3792", r.URL.Query().Get("lon"))
		_ = json.NewEncoder(w).Encode(map[string]string{"display_name": "Lagos, Nigeria"})
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, time.Second)
	addr, err := g.Reverse(context.Background(), 6.5244, 3.3792)
	require.NoError(t, err)
	require.Equal(t, "Lagos, Nigeria", addr)
}

func TestGeocoder_Reverse_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewGeocoder(srv.URL, time.Second)
	_, err := g.Reverse(context.Background(), 1, 2)
	require.Error(t, err)
}

func TestEvidenceClient_Upload_BatchAndOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/evidence", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		files := r.MultipartForm.File["evidence"]
		require.Len(t, files, 2)
		require.Equal(t, "receipt.jpg", files[0].Filename)
		require.Equal(t, "image/jpeg", files[0].Header.Get("Content-Type"))
		require.Equal(t, "recording.webm", files[1].Filename)

		f, err := files[0].Open()
		require.NoError(t, err)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		require.Equal(t, []byte("jpg-bytes"), b)

		_ = json.NewEncoder(w).Encode(domain.UploadEvidenceResponse{
			URLs: []string{"https://cdn/evidence/1", "https://cdn/evidence/2"},
		})
	}))
	defer srv.Close()

	c := NewEvidenceClient(srv.URL, time.Second)
	urls, err := c.Upload(context.Background(), []domain.EvidenceItem{
		{Name: "receipt.jpg", MIME: "image/jpeg", Data: []byte("jpg-bytes")},
		{Name: "recording.webm", MIME: "audio/webm", Data: []byte("audio")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"https://cdn/evidence/1", "https://cdn/evidence/2"}, urls)
}

func TestEvidenceClient_Upload_ServerErrorIsUploadFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewEvidenceClient(srv.URL, time.Second)
	_, err := c.Upload(context.Background(), []domain.EvidenceItem{{Name: "a", Data: []byte("x")}})
	require.ErrorIs(t, err, e.ErrUploadFailed)
}

func TestEvidenceClient_Upload_URLCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.UploadEvidenceResponse{URLs: []string{"only-one"}})
	}))
	defer srv.Close()

	c := NewEvidenceClient(srv.URL, time.Second)
	_, err := c.Upload(context.Background(), []domain.EvidenceItem{
		{Name: "a", Data: []byte("x")},
		{Name: "b", Data: []byte("y")},
	})
	require.ErrorIs(t, err, e.ErrUploadFailed)
}

func TestTicketClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/tickets", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.CreateTicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, domain.TicketLiveCrime, req.Type)
		require.Equal(t, domain.PriorityHigh, req.Priority)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.CreateTicketResponse{ID: "11111111-1111-1111-1111-111111111111"})
	}))
	defer srv.Close()

	c := NewTicketClient(srv.URL, "", time.Second)
	id, err := c.Create(context.Background(), domain.CreateTicketRequest{
		Type:        domain.TicketLiveCrime,
		Subject:     "Live Crime Report: FRAUD",
		Description: "Someone attempted to withdraw funds from my account",
		Priority:    domain.PriorityHigh,
		CrimeDetails: &domain.CrimeDetails{
			Category: domain.CategoryFraud,
			Location: &domain.GeoLocation{Latitude: 6.5244, Longitude: 3.3792, Address: "Lagos, Nigeria"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "11111111-1111-1111-1111-111111111111", id.String())
}

func TestTicketClient_List_SendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/admin/tickets", r.URL.Path)
		require.Equal(t, "secret", r.Header.Get("X-API-Key"))
		require.Equal(t, "1", r.URL.Query().Get("page"))
		_ = json.NewEncoder(w).Encode(domain.ListTicketsResponse{Page: 1, Limit: 20})
	}))
	defer srv.Close()

	c := NewTicketClient(srv.URL, "secret", time.Second)
	out, err := c.List(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, out.Page)
}
