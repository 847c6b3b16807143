package linetrace

// MultiSink fans each line out to several sinks, e.g. a console sink
// plus a ring capture.
type MultiSink struct {
	sinks []LineWriter
}

// NewMultiSink creates a MultiSink that duplicates lines to all
// provided sinks, in argument order.
func NewMultiSink(sinks ...LineWriter) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// WriteLine sends the line to every underlying sink.
func (m *MultiSink) WriteLine(line []byte) {
	for _, s := range m.sinks {
		s.WriteLine(line)
	}
}

// Flush flushes all underlying sinks and returns the first error.
func (m *MultiSink) Flush() error {
	var firstErr error
	for _, s := range m.sinks {
		if err := s.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
