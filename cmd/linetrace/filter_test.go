package main

import (
	"testing"

	"linetrace/traceparse"
)

func TestTagSet(t *testing.T) {
	cases := []struct {
		input []string
		want  string
	}{
		{nil, ""},
		{[]string{"E"}, "E"},
		{[]string{"E", "L"}, "EL"},
		{[]string{"EL"}, "EL"}, // packed form
	}
	for _, tc := range cases {
		set := tagSet(tc.input)
		if len(set) != len(tc.want) {
			t.Fatalf("tagSet(%v) has %d tags, want %d", tc.input, len(set), len(tc.want))
		}
		for i := 0; i < len(tc.want); i++ {
			if !set[tc.want[i]] {
				t.Errorf("tagSet(%v) missing %q", tc.input, tc.want[i])
			}
		}
	}
}

func TestMatchTag(t *testing.T) {
	set := tagSet([]string{"E", "L"})
	cases := []struct {
		tag    byte
		invert bool
		want   bool
	}{
		{'E', false, true},
		{'O', false, false},
		{'O', true, true},
		{'E', true, false},
	}
	for _, tc := range cases {
		if got := matchTag(set, tc.tag, tc.invert); got != tc.want {
			t.Errorf("matchTag(%q, invert=%v) = %v, want %v", tc.tag, tc.invert, got, tc.want)
		}
	}

	// An empty set matches everything, inverted or not.
	if !matchTag(tagSet(nil), 'X', false) || !matchTag(tagSet(nil), 'X', true) {
		t.Error("empty tag set should match every tag")
	}
}

func TestRenderLineUncolored(t *testing.T) {
	rec, err := traceparse.ParseLine("E,260823,070509,042: boom")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if got := renderLine(rec, false); got != "E,260823,070509,042: boom" {
		t.Fatalf("renderLine = %q", got)
	}
}
