package traceparse

import (
	"fmt"
	"strings"
	"time"
)

// PrefixLen is the fixed length of "<tag>,YYMMDD,HHMMSS,MMM: ".
const PrefixLen = 21

// Record is one parsed trace line.
type Record struct {
	Tag  byte      `msgpack:"tag"`
	Time time.Time `msgpack:"time"`
	Body string    `msgpack:"body"`
}

// ParseLine parses one wire-format line into a Record. A trailing
// newline is accepted and stripped. Two-digit years map to 2000-2099.
func ParseLine(line string) (Record, error) {
	line = strings.TrimSuffix(line, "\n")
	if len(line) < PrefixLen {
		return Record{}, fmt.Errorf("line too short for trace prefix: %q", line)
	}
	if line[1] != ',' || line[8] != ',' || line[15] != ',' || line[19:21] != ": " {
		return Record{}, fmt.Errorf("malformed trace prefix: %q", line[:PrefixLen])
	}

	date := line[2:8]
	tod := line[9:15]
	ms := line[16:19]
	for _, field := range []string{date, tod, ms} {
		if !allDigits(field) {
			return Record{}, fmt.Errorf("non-numeric timestamp field %q in %q", field, line[:PrefixLen])
		}
	}

	year := 2000 + digits2(date[0:2])
	month := digits2(date[2:4])
	day := digits2(date[4:6])
	hour := digits2(tod[0:2])
	minute := digits2(tod[2:4])
	second := digits2(tod[4:6])
	millis := digits2(ms[0:2])*10 + int(ms[2]-'0')

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Record{}, fmt.Errorf("impossible date %q", date)
	}
	if hour > 23 || minute > 59 || second > 59 {
		return Record{}, fmt.Errorf("impossible time of day %q", tod)
	}

	return Record{
		Tag:  line[0],
		Time: time.Date(year, time.Month(month), day, hour, minute, second, millis*int(time.Millisecond), time.UTC),
		Body: line[PrefixLen:],
	}, nil
}

// Format re-emits the record as a wire-format line without the trailing
// newline.
func (r Record) Format() string {
	return fmt.Sprintf("%c,%s,%03d: %s",
		r.Tag,
		r.Time.Format("060102,150405"),
		r.Time.Nanosecond()/int(time.Millisecond),
		r.Body)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digits2 converts a two-character digit field; inputs are validated by
// allDigits before this runs.
func digits2(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
