package linetrace

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// formatStamp renders the statement timestamp as three comma-separated
// fixed-width fields: two-digit year+month+day, hour+minute+second,
// millisecond. Computed once per statement, at Begin.
func formatStamp(t time.Time) string {
	return t.Format("060102,150405") + "," + fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

// formatValue renders a value with the stream baseline defaults:
// booleans as words, floating point in fixed notation with three
// fractional digits. Everything else goes through fmt.
func formatValue(v any) string {
	switch x := v.(type) {
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 3, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', 3, 32)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

// justify right-justifies text to the given display width, measured in
// terminal cells so that wide runes pad correctly. Text already at or
// beyond the width is returned unchanged, never truncated.
func justify(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", width-w) + text
}
