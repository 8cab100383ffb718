package domain

import (
	"time"

	"github.com/google/uuid"
)

// EvidenceItem is one unit of attached proof, either a user-selected file
// or a finalized audio recording, held client-side until submission.
type EvidenceItem struct {
	Name string
	MIME string
	Data []byte
}

type UploadEvidenceResponse struct {
	URLs []string `json:"urls"`
}

// StoredEvidence is the gateway-side record of one uploaded blob.
// TicketID stays nil until a ticket references the URL; unreferenced
// rows are swept by the orphan GC.
type StoredEvidence struct {
	ID        uuid.UUID  `json:"id"`
	ObjectKey string     `json:"object_key"`
	URL       string     `json:"url"`
	MIME      string     `json:"mime"`
	Size      int64      `json:"size"`
	TicketID  *uuid.UUID `json:"ticket_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
