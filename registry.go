package linetrace

import (
	"os"
	"sync"
)

// The four predefined streams live for the process lifetime. They are
// built exactly once, on first use of any accessor, regardless of which
// goroutine gets there first.
var (
	defaultsOnce sync.Once

	errStream *Stream
	outStream *Stream
	logStream *Stream
	tmpStream *Stream
)

func initDefaults() {
	outSink := NewSink(os.Stdout)

	errStream = New(os.Stderr, 'E')
	outStream = NewWithSink(outSink, 'O')
	logStream = New(os.Stderr, 'L')
	// T shares O's sink, not just its destination: scratch lines never
	// interleave with regular output and stay easy to grep for.
	tmpStream = NewWithSink(outSink, 'T')
}

// Err returns the error stream (tag E, standard error).
func Err() *Stream {
	defaultsOnce.Do(initDefaults)
	return errStream
}

// Out returns the standard output stream (tag O).
func Out() *Stream {
	defaultsOnce.Do(initDefaults)
	return outStream
}

// Log returns the log stream (tag L, standard error).
func Log() *Stream {
	defaultsOnce.Do(initDefaults)
	return logStream
}

// Tmp returns the scratch stream (tag T). It writes to the same sink as
// Out and is intended for transient debugging statements that are
// located and removed by searching for the tag.
func Tmp() *Stream {
	defaultsOnce.Do(initDefaults)
	return tmpStream
}
