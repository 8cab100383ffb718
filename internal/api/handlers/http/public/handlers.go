package public

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"log/slog"

	"github.com/google/uuid"

	"liveCrime/internal/domain"
	"liveCrime/internal/metrics"
)

// keeps a sabotaged multipart body from exhausting memory
const maxEvidenceBytes = 64 << 20

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type TicketCreator interface {
	Create(ctx context.Context, req domain.CreateTicketRequest) (uuid.UUID, error)
}

type EvidenceStorer interface {
	StoreBatch(ctx context.Context, items []domain.EvidenceItem) ([]string, error)
}

type Handler struct {
	logger   *slog.Logger
	Tickets  TicketCreator
	Evidence EvidenceStorer
	metrics  *metrics.Metrics
}

func NewHandler(logger *slog.Logger, tickets TicketCreator, evidence EvidenceStorer, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		Tickets:  tickets,
		Evidence: evidence,
		metrics:  m,
	}
}

func (h *Handler) TicketCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("TicketCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateTicketRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// reject trailing data after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	l.Info("creating ticket",
		slog.String("type", string(req.Type)),
		slog.String("subject", req.Subject),
		slog.String("priority", string(req.Priority)),
	)

	id, err := h.Tickets.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if h.metrics != nil && req.CrimeDetails != nil {
		h.metrics.TicketsCreated.WithLabelValues(string(req.CrimeDetails.Category)).Inc()
	}

	l.Info("ticket created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, domain.CreateTicketResponse{ID: id.String()})
}

// EvidenceUpload accepts a multipart/form-data batch under the
// "evidence" field and answers with one reference URL per part, in the
// order the parts arrived.
func (h *Handler) EvidenceUpload(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("EvidenceUpload", slog.String("remote", r.RemoteAddr))

	r.Body = http.MaxBytesReader(w, r.Body, maxEvidenceBytes)

	if err := r.ParseMultipartForm(maxEvidenceBytes); err != nil {
		l.Warn("invalid multipart body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	parts := r.MultipartForm.File["evidence"]
	if len(parts) == 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no evidence parts"})
		return
	}

	items := make([]domain.EvidenceItem, 0, len(parts))
	var totalBytes int64
	for _, fh := range parts {
		item, err := readPart(fh)
		if err != nil {
			l.Warn("unreadable part", slog.String("name", fh.Filename), slog.Any("error", err))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable part: " + fh.Filename})
			return
		}
		totalBytes += int64(len(item.Data))
		items = append(items, item)
	}

	urls, err := h.Evidence.StoreBatch(r.Context(), items)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.EvidenceBytes.Add(float64(totalBytes))
	}

	l.Info("evidence stored", slog.Int("items", len(items)), slog.Int64("bytes", totalBytes))
	h.writeJSON(w, http.StatusOK, domain.UploadEvidenceResponse{URLs: urls})
}

func readPart(fh *multipart.FileHeader) (domain.EvidenceItem, error) {
	f, err := fh.Open()
	if err != nil {
		return domain.EvidenceItem{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.EvidenceItem{}, err
	}

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	return domain.EvidenceItem{Name: fh.Filename, MIME: mime, Data: data}, nil
}
