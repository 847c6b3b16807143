package linetrace

// Statement accumulates one logical line: the stream prefix, a
// timestamp captured once at Begin, and the chained insertions. It is
// ephemeral; End hands the completed line to the sink and discards it.
type Statement struct {
	st  *state
	buf []byte
	// live is false when the stream was disabled at Begin; every
	// insertion is then discarded and End writes nothing.
	live bool
}

// Begin starts a statement. On a disabled stream the statement is
// suppressed: no timestamp is computed and all insertions are dropped.
func (s *Stream) Begin() *Statement {
	st := s.st
	if !st.enabled {
		return &Statement{st: st}
	}

	stamp := formatStamp(st.clock())
	buf := make([]byte, 0, 32)
	buf = append(buf, st.tag, ',')
	buf = append(buf, stamp...)
	buf = append(buf, ':', ' ')
	return &Statement{st: st, buf: buf, live: true}
}

// V appends the rendered form of each value to the line. While a sticky
// width is active, every value is right-justified to that width; the
// directive is not consumed by the insertion.
func (t *Statement) V(values ...any) *Statement {
	if !t.live {
		return t
	}
	for _, v := range values {
		text := formatValue(v)
		if t.st.width > 0 {
			text = justify(text, t.st.width)
		}
		t.buf = append(t.buf, text...)
	}
	return t
}

// Width updates the stream's sticky width, effective from the next
// insertion, including one chained immediately after. It mutates the
// stream, not the statement, so it applies even while suppressed.
func (t *Statement) Width(n int) *Statement {
	if n < 0 {
		n = 0
	}
	t.st.width = n
	return t
}

// End terminates the line and writes it atomically through the sink.
// No-op for a suppressed statement.
func (t *Statement) End() {
	if !t.live {
		return
	}
	t.buf = append(t.buf, '\n')
	t.st.sink.WriteLine(t.buf)
	t.buf = nil
	t.live = false
}
