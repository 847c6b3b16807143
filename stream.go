package linetrace

import (
	"io"
	"time"
)

// state holds the mutable per-stream fields. Only this package
// constructs one; callers always go through a Stream handle.
//
// enabled and width are shared mutable state: callers must serialize
// configuration changes against concurrent insertions on the same
// stream. Line writes themselves are synchronized by the sink.
type state struct {
	tag     byte
	enabled bool
	width   int // sticky width, 0 = none
	sink    LineWriter
	clock   func() time.Time
}

// Stream is a named, independently toggleable output channel bound to
// one destination. Obtain one from the predefined accessors (Err, Out,
// Log, Tmp) or from New for an arbitrary destination.
type Stream struct {
	st *state
}

// New creates a stream over w with the given one-character tag.
// Tag uniqueness is a convention between callers, never validated.
func New(w io.Writer, tag byte) *Stream {
	return NewWithSink(NewSink(w), tag)
}

// NewWithSink creates a stream over an existing sink. Several streams
// may share one sink; their lines then never interleave at all.
func NewWithSink(sink LineWriter, tag byte) *Stream {
	return &Stream{st: &state{
		tag:     tag,
		enabled: true,
		sink:    sink,
		clock:   time.Now,
	}}
}

// Tag returns the stream's one-character identity.
func (s *Stream) Tag() byte { return s.st.tag }

// Enabled reports whether statements on this stream currently emit.
func (s *Stream) Enabled() bool { return s.st.enabled }

// SetWidth sets the sticky width for subsequent insertions on this
// stream. The width persists across statements until changed; n <= 0
// clears it.
func (s *Stream) SetWidth(n int) {
	if n < 0 {
		n = 0
	}
	s.st.width = n
}

// Flush forces visibility of already-completed lines. It has no effect
// on a statement that has begun but not yet ended.
func (s *Stream) Flush() error {
	return s.st.sink.Flush()
}
