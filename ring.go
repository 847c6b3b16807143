package linetrace

import (
	"io"
	"sync"
)

// RingSink keeps the last N complete lines in memory (circular buffer).
// Useful as a stream destination when trace output should only surface
// post mortem, e.g. dumped after a failure.
type RingSink struct {
	mu       sync.RWMutex
	lines    []string
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
}

// NewRingSink creates a RingSink holding up to capacity lines.
func NewRingSink(capacity int) *RingSink {
	if capacity <= 0 {
		capacity = 256
	}
	return &RingSink{
		lines:    make([]string, capacity),
		capacity: capacity,
	}
}

// WriteLine stores one complete line, evicting the oldest when full.
func (r *RingSink) WriteLine(line []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines[r.head] = string(line)
	r.head = (r.head + 1) % r.capacity

	if r.head == 0 {
		r.full = true
	}
}

// Snapshot returns a copy of the stored lines in chronological order.
func (r *RingSink) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.full {
		// Not wrapped yet - return [0:head]
		result := make([]string, r.head)
		copy(result, r.lines[:r.head])
		return result
	}

	// Wrapped - return [head:capacity] + [0:head]
	result := make([]string, r.capacity)
	copy(result, r.lines[r.head:])
	copy(result[r.capacity-r.head:], r.lines[:r.head])
	return result
}

// Dump writes all stored lines to w in chronological order.
func (r *RingSink) Dump(w io.Writer) error {
	for _, line := range r.Snapshot() {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op for RingSink since everything is in memory.
func (r *RingSink) Flush() error {
	return nil
}
