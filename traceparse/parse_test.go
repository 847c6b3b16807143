package traceparse

import (
	"bytes"
	"testing"
	"time"
)

func TestParseLine(t *testing.T) {
	rec, err := ParseLine("L,260823,070509,042: loaded 7 modules\n")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}

	if rec.Tag != 'L' {
		t.Errorf("tag = %q, want 'L'", rec.Tag)
	}
	want := time.Date(2026, 8, 23, 7, 5, 9, 42e6, time.UTC)
	if !rec.Time.Equal(want) {
		t.Errorf("time = %v, want %v", rec.Time, want)
	}
	if rec.Body != "loaded 7 modules" {
		t.Errorf("body = %q", rec.Body)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"too short", "L,260823"},
		{"missing separator", "L,260823,070509,042:x body here more"},
		{"letters in date", "L,26AB23,070509,042: body"},
		{"missing comma", "L.260823,070509,042: body"},
		{"month 13", "L,261323,070509,042: body"},
		{"hour 24", "L,260823,240000,000: body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLine(tc.line); err == nil {
				t.Fatalf("ParseLine accepted %q", tc.line)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	lines := []string{
		"E,260823,070509,042: connection refused",
		"O,000101,000000,000: ",
		"T,311231,235959,999: scratch value   42",
	}
	for _, line := range lines {
		rec, err := ParseLine(line)
		if err != nil {
			t.Fatalf("ParseLine(%q): %v", line, err)
		}
		if got := rec.Format(); got != line {
			t.Errorf("round trip changed line:\n got %q\nwant %q", got, line)
		}
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	records := []Record{
		{Tag: 'E', Time: time.Date(2026, 8, 23, 7, 5, 9, 42e6, time.UTC), Body: "boom"},
		{Tag: 'O', Time: time.Date(2026, 8, 23, 7, 5, 10, 0, time.UTC), Body: "fine again"},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("got %d records, want %d", len(decoded), len(records))
	}
	for i := range records {
		if decoded[i].Tag != records[i].Tag || decoded[i].Body != records[i].Body {
			t.Errorf("record %d = %+v, want %+v", i, decoded[i], records[i])
		}
		if !decoded[i].Time.Equal(records[i].Time) {
			t.Errorf("record %d time = %v, want %v", i, decoded[i].Time, records[i].Time)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not msgpack at all"))); err == nil {
		t.Fatal("Decode accepted garbage input")
	}
}
