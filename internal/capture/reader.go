package capture

import (
	"context"
	"io"
	"sync"
)

// ChunkReaderSource adapts any io.Reader into an AudioSource, emitting
// fixed-size chunks. The usual reader is an OS capture pipe (arecord,
// sox, parec) configured via CAPTURE_CMD.
type ChunkReaderSource struct {
	r         io.Reader
	chunkSize int
	mime      string
}

func NewChunkReaderSource(r io.Reader, chunkSize int, mime string) *ChunkReaderSource {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return &ChunkReaderSource{r: r, chunkSize: chunkSize, mime: mime}
}

func (s *ChunkReaderSource) Open(ctx context.Context) (Stream, error) {
	st := &readerStream{
		mime:   s.mime,
		chunks: make(chan []byte, 16),
		stop:   make(chan struct{}),
	}

	go func() {
		defer close(st.chunks)
		for {
			select {
			case <-ctx.Done():
				return
			case <-st.stop:
				return
			default:
			}

			buf := make([]byte, s.chunkSize)
			n, err := s.r.Read(buf)
			if n > 0 {
				select {
				case st.chunks <- buf[:n]:
				case <-st.stop:
					return
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	return st, nil
}

type readerStream struct {
	mime     string
	chunks   chan []byte
	stop     chan struct{}
	stopOnce sync.Once
}

func (s *readerStream) Chunks() <-chan []byte { return s.chunks }
func (s *readerStream) MIME() string          { return s.mime }

// Close stops chunk emission after the in-flight read completes.
func (s *readerStream) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}
