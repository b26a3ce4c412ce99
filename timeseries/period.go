package timeseries

import (
	"fmt"
	"strings"
	"time"
)

// Granularity identifies the size of a time-period bucket.
type Granularity int

const (
	Hour Granularity = iota
	Day
	Month
	Quarter
	Year
)

// String returns the lowercase name of the granularity.
func (g Granularity) String() string {
	switch g {
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// ParseGranularity parses a granularity name (case-insensitive).
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hour", "hourly":
		return Hour, nil
	case "day", "daily":
		return Day, nil
	case "month", "monthly":
		return Month, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "year", "yearly", "annual":
		return Year, nil
	}
	return 0, fmt.Errorf("unknown granularity %q", s)
}

// SerialIndex returns the serial index of the period containing t at the given
// granularity. Consecutive periods of the same granularity have consecutive
// serial indices, so serial distance equals period distance.
func SerialIndex(t time.Time, g Granularity) int64 {
	t = t.UTC()
	switch g {
	case Hour:
		return floorDiv(t.Unix(), 3600)
	case Day:
		return floorDiv(t.Unix(), 86400)
	case Month:
		return int64(t.Year())*12 + int64(t.Month()) - 1
	case Quarter:
		return int64(t.Year())*4 + int64(t.Month()-1)/3
	case Year:
		return int64(t.Year())
	default:
		return floorDiv(t.Unix(), 86400)
	}
}

// floorDiv divides rounding toward negative infinity, so pre-epoch times still
// map to monotonic serials.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
