package mdsite

import (
	"strings"
	"time"
)

// Accepted front-matter date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// resolveZone loads an IANA zone by name. Unknown names resolve to UTC
// instead of failing, so a typo'd zone in config still yields usable dates.
func resolveZone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate converts a front-matter date value into a timezone-aware time.
//
// The YAML decoder hands us either a time.Time (for unquoted timestamps and
// date-only values) or a string. Strings are tried against the accepted
// layouts in order. A value that carries its own offset wins over the site
// zone; naive values get the resolved zone attached without conversion.
func ParseDate(value any, timezone, path string) (time.Time, error) {
	loc := resolveZone(timezone)

	switch v := value.(type) {
	case time.Time:
		if _, offset := v.Zone(); offset != 0 {
			return v, nil
		}
		// yaml.v3 represents naive timestamps in UTC. Re-interpret the
		// wall clock in the site zone rather than converting it.
		return time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), loc), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, nil
			}
		}
		return time.Time{}, parseErrorf(path, "invalid date format %q, use YYYY-MM-DD", v)
	default:
		return time.Time{}, parseErrorf(path, "date must be a string, timestamp, or date, got %T", value)
	}
}
