package datemath

import "time"

// Resolution is the outcome of scanning a clause for date/time expressions.
type Resolution struct {
	At      time.Time // resolved instant, normalized to UTC
	HasDate bool      // a calendar date was stated
	HasTime bool      // a clock time was stated
	Spans   [][2]int  // byte ranges of the matched expressions in the input
}

// ISOMillis is the wire layout for resolved instants: ISO-8601 with
// millisecond precision, "Z" at UTC.
const ISOMillis = "2006-01-02T15:04:05.000Z07:00"

// FormatUTC renders t in the wire layout.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
