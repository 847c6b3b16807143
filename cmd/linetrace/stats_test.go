package main

import (
	"strings"
	"testing"
	"time"
)

func TestTally(t *testing.T) {
	input := strings.Join([]string{
		"E,260823,070509,042: first failure",
		"O,260823,070510,000: ok",
		"garbage that is not a trace line",
		"E,260823,070512,999: second failure",
	}, "\n")

	stats, malformed, err := tally(strings.NewReader(input))
	if err != nil {
		t.Fatalf("tally: %v", err)
	}

	if malformed != 1 {
		t.Errorf("malformed = %d, want 1", malformed)
	}
	e, ok := stats['E']
	if !ok || e.count != 2 {
		t.Fatalf("stats['E'] = %+v, want count 2", e)
	}
	wantFirst := time.Date(2026, 8, 23, 7, 5, 9, 42e6, time.UTC)
	if !e.first.Equal(wantFirst) {
		t.Errorf("first = %v, want %v", e.first, wantFirst)
	}
	wantLast := time.Date(2026, 8, 23, 7, 5, 12, 999e6, time.UTC)
	if !e.last.Equal(wantLast) {
		t.Errorf("last = %v, want %v", e.last, wantLast)
	}
	if o := stats['O']; o == nil || o.count != 1 {
		t.Fatalf("stats['O'] = %+v, want count 1", o)
	}
}

func TestTallyEmptyInput(t *testing.T) {
	stats, malformed, err := tally(strings.NewReader(""))
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	if len(stats) != 0 || malformed != 0 {
		t.Fatalf("stats = %v, malformed = %d; want empty", stats, malformed)
	}
}
