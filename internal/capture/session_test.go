package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"liveCrime/pkg/e"
)

// scriptedSource emits a fixed list of chunks and then closes the stream.
type scriptedSource struct {
	chunks  [][]byte
	openErr error
}

func (s *scriptedSource) Open(ctx context.Context) (Stream, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	st := &scriptedStream{chunks: make(chan []byte, len(s.chunks))}
	for _, c := range s.chunks {
		st.chunks <- c
	}
	close(st.chunks)
	return st, nil
}

type scriptedStream struct {
	chunks chan []byte
}

func (s *scriptedStream) Chunks() <-chan []byte { return s.chunks }
func (s *scriptedStream) MIME() string          { return "audio/webm" }
func (s *scriptedStream) Close() error          { return nil }

func TestRecordingSession_ConcatenatesChunksInOrder(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{[]byte("c1"), []byte("c2"), []byte("c3")}}
	sess := NewRecordingSession()

	require.NoError(t, sess.Start(context.Background(), src))

	item, err := sess.Stop("recording.webm")
	require.NoError(t, err)
	require.Equal(t, "recording.webm", item.Name)
	require.Equal(t, "audio/webm", item.MIME)
	require.Equal(t, []byte("c1c2c3"), item.Data)

	require.False(t, sess.Active())
	require.Empty(t, sess.chunks, "chunk buffer must be empty after Stop")
}

func TestRecordingSession_StopWithoutStart(t *testing.T) {
	sess := NewRecordingSession()
	_, err := sess.Stop("x")
	require.ErrorIs(t, err, e.ErrNoRecording)
}

func TestRecordingSession_DoubleStart(t *testing.T) {
	src := &scriptedSource{chunks: [][]byte{[]byte("a")}}
	sess := NewRecordingSession()

	require.NoError(t, sess.Start(context.Background(), src))
	err := sess.Start(context.Background(), src)
	require.ErrorIs(t, err, e.ErrRecordingActive)

	_, err = sess.Stop("a.webm")
	require.NoError(t, err)
}

func TestRecordingSession_OpenFailureStaysInactive(t *testing.T) {
	src := &scriptedSource{openErr: e.ErrCapabilityUnavailable}
	sess := NewRecordingSession()

	err := sess.Start(context.Background(), src)
	require.ErrorIs(t, err, e.ErrCapabilityUnavailable)
	require.False(t, sess.Active())
}

func TestRecordingSession_ReusableAfterStop(t *testing.T) {
	sess := NewRecordingSession()

	require.NoError(t, sess.Start(context.Background(), &scriptedSource{chunks: [][]byte{[]byte("first")}}))
	first, err := sess.Stop("first.webm")
	require.NoError(t, err)
	require.Equal(t, []byte("first"), first.Data)

	require.NoError(t, sess.Start(context.Background(), &scriptedSource{chunks: [][]byte{[]byte("second")}}))
	second, err := sess.Stop("second.webm")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), second.Data, "finalize must replace the buffer, not append to it")
}

func TestRecordingSession_EmptyRecording(t *testing.T) {
	sess := NewRecordingSession()
	require.NoError(t, sess.Start(context.Background(), &scriptedSource{}))

	item, err := sess.Stop("empty.webm")
	require.NoError(t, err)
	require.Empty(t, item.Data)
}

func TestRecordingSession_StartErrorIsWrapped(t *testing.T) {
	boom := errors.New("mic busy")
	sess := NewRecordingSession()

	err := sess.Start(context.Background(), &scriptedSource{openErr: boom})
	require.ErrorIs(t, err, boom)
}
