package capture

import (
	"bytes"
	"context"
	"sync"

	"liveCrime/internal/domain"
	"liveCrime/pkg/e"
)

// RecordingSession buffers chunks from one audio capture stream. Chunks
// are appended strictly in arrival order; Stop concatenates them into a
// single evidence item and resets the session for reuse.
type RecordingSession struct {
	mu     sync.Mutex
	stream Stream
	chunks [][]byte
	active bool
	done   chan struct{}
}

func NewRecordingSession() *RecordingSession {
	return &RecordingSession{}
}

func (s *RecordingSession) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Start opens the capture stream and begins collecting chunks. Only one
// recording may be active at a time.
func (s *RecordingSession) Start(ctx context.Context, src AudioSource) error {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return e.ErrRecordingActive
	}
	s.mu.Unlock()

	stream, err := src.Open(ctx)
	if err != nil {
		return e.Wrap("capture.Start", err)
	}

	s.mu.Lock()
	s.stream = stream
	s.chunks = nil
	s.done = make(chan struct{})
	s.active = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		for chunk := range stream.Chunks() {
			s.mu.Lock()
			s.chunks = append(s.chunks, chunk)
			s.mu.Unlock()
		}
	}()

	return nil
}

// Stop releases the capture stream, waits for the tail chunks, and
// finalizes everything collected so far into one evidence item. The
// chunk buffer is empty when Stop returns. Stopping mid-flight keeps
// whatever arrived; it never discards chunks.
func (s *RecordingSession) Stop(name string) (domain.EvidenceItem, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return domain.EvidenceItem{}, e.ErrNoRecording
	}
	stream := s.stream
	done := s.done
	s.mu.Unlock()

	if err := stream.Close(); err != nil {
		return domain.EvidenceItem{}, e.Wrap("capture.Stop", err)
	}
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	for _, chunk := range s.chunks {
		buf.Write(chunk)
	}

	item := domain.EvidenceItem{
		Name: name,
		MIME: stream.MIME(),
		Data: buf.Bytes(),
	}

	// replace the buffer, do not mutate it in place
	s.chunks = nil
	s.stream = nil
	s.active = false

	return item, nil
}
