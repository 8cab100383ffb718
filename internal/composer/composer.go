package composer

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"liveCrime/internal/capture"
	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
	"liveCrime/pkg/validator"
)

//go:generate mockgen -source=composer.go -destination=mocks/mock.go

// LocationSource resolves the device's current position. The capability
// may be absent or denied; that is reported as e.ErrCapabilityUnavailable.
type LocationSource interface {
	Position(ctx context.Context) (lat, lng float64, err error)
}

// Geocoder resolves coordinates to a human-readable address.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// EvidenceUploader persists an evidence batch and returns one reference
// URL per item, in item order.
type EvidenceUploader interface {
	Upload(ctx context.Context, items []domain.EvidenceItem) ([]string, error)
}

// TicketCreator files the report as a new support ticket.
type TicketCreator interface {
	Create(ctx context.Context, req domain.CreateTicketRequest) (uuid.UUID, error)
}

// Composer owns the state of one live-crime report composition session:
// resolved location, evidence collection, recording session. Evidence
// upload strictly precedes ticket creation because the ticket payload
// embeds the upload's reference URLs.
type Composer struct {
	logger   *slog.Logger
	location LocationSource
	geocoder Geocoder
	uploader EvidenceUploader
	tickets  TicketCreator
	audio    capture.AudioSource

	mu         sync.Mutex
	phase      Phase
	loc        *domain.GeoLocation
	evidence   []domain.EvidenceItem
	rec        *capture.RecordingSession
	submitting bool

	// last successful upload, reused on retry when evidence is unchanged
	uploadedSum  [sha256.Size]byte
	uploadedURLs []string
}

func NewComposer(
	logger *slog.Logger,
	location LocationSource,
	geocoder Geocoder,
	uploader EvidenceUploader,
	tickets TicketCreator,
	audio capture.AudioSource,
) *Composer {
	return &Composer{
		logger:   logger,
		location: location,
		geocoder: geocoder,
		uploader: uploader,
		tickets:  tickets,
		audio:    audio,
		phase:    PhaseIdle,
		rec:      capture.NewRecordingSession(),
	}
}

// AcquireLocation requests the device position and reverse-geocodes it.
// It is called once when the session opens and may be retried manually;
// the last successful call wins. A failed retry keeps any location that
// was already resolved.
func (c *Composer) AcquireLocation(ctx context.Context) error {
	c.mu.Lock()
	if c.loc == nil {
		c.phase = PhaseLocationPending
	}
	c.mu.Unlock()

	lat, lng, err := c.location.Position(ctx)
	if err != nil {
		c.failLocation()
		c.logger.Warn("position query failed", slog.Any("error", err))
		return e.Wrap("composer.AcquireLocation", err)
	}

	addr, err := c.geocoder.Reverse(ctx, lat, lng)
	if err != nil {
		c.failLocation()
		c.logger.Warn("reverse geocode failed",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err),
		)
		return e.Wrap("composer.AcquireLocation", err)
	}

	c.mu.Lock()
	c.loc = &domain.GeoLocation{Latitude: lat, Longitude: lng, Address: addr}
	if c.phase == PhaseIdle || c.phase == PhaseLocationPending || c.phase == PhaseLocationFailed {
		c.phase = PhaseLocationResolved
	}
	c.mu.Unlock()

	c.logger.Info("location resolved",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.String("address", addr),
	)
	return nil
}

func (c *Composer) failLocation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loc == nil {
		c.phase = PhaseLocationFailed
	}
}

// Location returns the resolved location, or nil while unresolved.
func (c *Composer) Location() *domain.GeoLocation {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loc == nil {
		return nil
	}
	loc := *c.loc
	return &loc
}

func (c *Composer) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// StartRecording opens the microphone stream. Recording is permitted
// regardless of location status.
func (c *Composer) StartRecording(ctx context.Context) error {
	if c.audio == nil {
		return e.ErrCapabilityUnavailable
	}
	return c.rec.Start(ctx, c.audio)
}

// StopRecording finalizes the active recording into one evidence item
// and appends it to the collection. This is the only path by which a
// recording becomes evidence.
func (c *Composer) StopRecording(name string) (domain.EvidenceItem, error) {
	item, err := c.rec.Stop(name)
	if err != nil {
		return domain.EvidenceItem{}, err
	}

	c.mu.Lock()
	c.evidence = append(c.evidence, item)
	c.mu.Unlock()

	c.logger.Info("recording finalized",
		slog.String("name", item.Name),
		slog.Int("bytes", len(item.Data)),
	)
	return item, nil
}

func (c *Composer) Recording() bool {
	return c.rec.Active()
}

// AddFiles appends the selection to the evidence collection in order.
// No dedup, no type or size validation; the backend owns that.
func (c *Composer) AddFiles(items ...domain.EvidenceItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evidence = append(c.evidence, items...)
}

// RemoveEvidence drops the item at idx. An out-of-range index is a
// no-op: the UI may race a removal against an earlier one.
func (c *Composer) RemoveEvidence(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < 0 || idx >= len(c.evidence) {
		return
	}
	c.evidence = append(c.evidence[:idx:idx], c.evidence[idx+1:]...)
}

// Evidence returns a snapshot of the collection in attachment order.
func (c *Composer) Evidence() []domain.EvidenceItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.EvidenceItem, len(c.evidence))
	copy(out, c.evidence)
	return out
}

// Submit validates the form, uploads the evidence batch, and files the
// report as a HIGH priority support ticket. The upload is a strict
// causal predecessor of ticket creation; an upload failure aborts the
// submission with no ticket created and the evidence kept for retry.
func (c *Composer) Submit(ctx context.Context, form domain.ReportForm) (uuid.UUID, error) {
	if err := validator.ValidateStruct(form); err != nil {
		return uuid.Nil, fmt.Errorf("composer.Submit: %s: %w", err.Error(), e.ErrInvalidInput)
	}

	c.mu.Lock()
	if c.phase == PhaseSubmitted {
		c.mu.Unlock()
		return uuid.Nil, e.ErrSessionSubmitted
	}
	if c.submitting {
		c.mu.Unlock()
		return uuid.Nil, e.ErrSubmitInFlight
	}
	if c.loc == nil {
		c.mu.Unlock()
		return uuid.Nil, e.ErrMissingLocation
	}
	loc := *c.loc
	items := make([]domain.EvidenceItem, len(c.evidence))
	copy(items, c.evidence)
	c.submitting = true
	c.phase = PhaseSubmitting
	c.mu.Unlock()

	id, err := c.submit(ctx, form, loc, items)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		c.phase = PhaseSubmitFailed
	} else {
		c.phase = PhaseSubmitted
		c.evidence = nil
		c.uploadedURLs = nil
		c.uploadedSum = [sha256.Size]byte{}
	}
	c.mu.Unlock()

	if err == nil {
		c.releaseRecording()
	}
	return id, err
}

func (c *Composer) submit(ctx context.Context, form domain.ReportForm, loc domain.GeoLocation, items []domain.EvidenceItem) (uuid.UUID, error) {
	urls := []string{}
	if len(items) > 0 {
		sum := fingerprint(items)

		c.mu.Lock()
		cached := c.uploadedURLs
		cachedSum := c.uploadedSum
		c.mu.Unlock()

		if cached != nil && cachedSum == sum {
			urls = cached
			c.logger.Info("reusing uploaded evidence references", slog.Int("count", len(urls)))
		} else {
			uploaded, err := c.uploader.Upload(ctx, items)
			if err != nil {
				c.logger.Error("evidence upload failed", slog.Any("error", err))
				return uuid.Nil, e.Wrap("composer.Submit", err)
			}
			urls = uploaded

			c.mu.Lock()
			c.uploadedURLs = uploaded
			c.uploadedSum = sum
			c.mu.Unlock()
		}
	}

	req := domain.CreateTicketRequest{
		Type:        domain.TicketLiveCrime,
		Subject:     "Live Crime Report: " + string(form.Category),
		Description: form.Description,
		Priority:    domain.PriorityHigh,
		CrimeDetails: &domain.CrimeDetails{
			Category:          form.Category,
			Description:       form.Description,
			InProgress:        form.InProgress,
			EmergencyContacts: form.EmergencyContacts,
			Location:          &loc,
			EvidenceURLs:      urls,
		},
	}

	id, err := c.tickets.Create(ctx, req)
	if err != nil {
		c.logger.Error("ticket creation failed", slog.Any("error", err))
		return uuid.Nil, e.Wrap("composer.Submit", err)
	}

	c.logger.Info("report submitted", slog.String("ticket_id", id.String()))
	return id, nil
}

// releaseRecording drops any leftover capture state so the device handle
// is not leaked once the session reaches a terminal phase.
func (c *Composer) releaseRecording() {
	if c.rec.Active() {
		_, _ = c.rec.Stop("discarded")
	}
	c.rec = capture.NewRecordingSession()
}

// fingerprint identifies an evidence batch so references from a prior
// successful upload can be reused when a retry carries identical items.
func fingerprint(items []domain.EvidenceItem) [sha256.Size]byte {
	h := sha256.New()
	var n [8]byte
	for _, item := range items {
		binary.BigEndian.PutUint64(n[:], uint64(len(item.Name)))
		h.Write(n[:])
		h.Write([]byte(item.Name))
		binary.BigEndian.PutUint64(n[:], uint64(len(item.MIME)))
		h.Write(n[:])
		h.Write([]byte(item.MIME))
		binary.BigEndian.PutUint64(n[:], uint64(len(item.Data)))
		h.Write(n[:])
		h.Write(item.Data)
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
