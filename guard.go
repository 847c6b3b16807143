package linetrace

// Guard restores a stream's prior enabled state when released. Acquire
// one with Enable or Disable and release it with defer, so restoration
// runs on every exit path and nested guards unwind in LIFO order:
//
//	g := linetrace.Disable(s)
//	defer g.Release()
//
// A Guard never touches the stream's sticky width.
type Guard struct {
	st       *state
	prev     bool
	released bool
}

// Enable forces the stream on and returns a guard that restores the
// previous enabled state on Release.
func Enable(s *Stream) *Guard {
	return newGuard(s.st, true)
}

// Disable forces the stream off and returns a guard that restores the
// previous enabled state on Release.
func Disable(s *Stream) *Guard {
	return newGuard(s.st, false)
}

func newGuard(st *state, target bool) *Guard {
	g := &Guard{st: st, prev: st.enabled}
	st.enabled = target
	return g
}

// Release restores the enabled state snapshotted at acquisition.
// Idempotent and infallible: a second Release does nothing, and no
// failure path can prevent the restoration.
func (g *Guard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.st.enabled = g.prev
}
