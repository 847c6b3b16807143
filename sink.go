package linetrace

import (
	"io"
	"sync"
)

// LineWriter is the destination surface a stream writes through.
// WriteLine receives one complete, newline-terminated line at a time
// and must not interleave it with lines from other goroutines.
type LineWriter interface {
	WriteLine(line []byte)
	Flush() error
}

// Sink wraps an io.Writer with line-atomic writes.
// Two Sinks over the same writer may interleave whole lines with each
// other, but a single Sink never splits a line.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink creates a Sink over w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// WriteLine writes one complete line as a single Write call.
// Write errors are dropped: tracing must never abort the traced code.
func (s *Sink) WriteLine(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.w.Write(line) //nolint:errcheck
}

// Flush forces visibility of buffered output. If the wrapped writer has
// a Flush method it is delegated to; otherwise this is a no-op.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if flusher, ok := s.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}
