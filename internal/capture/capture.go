package capture

import "context"

// AudioSource opens a microphone capture stream. Open fails with
// e.ErrCapabilityUnavailable when no capture device is present or access
// is denied.
type AudioSource interface {
	Open(ctx context.Context) (Stream, error)
}

// Stream delivers audio chunks in the order the capture device emitted
// them. The channel is closed after Close returns and the tail chunks
// have been delivered.
type Stream interface {
	Chunks() <-chan []byte
	MIME() string
	Close() error
}
