package utils

import "time"

// dateFormats are tried in order when parsing dates from clients. Mobile
// and web clients send a mix of RFC3339 variants and bare dates.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string in any of the accepted formats.
func ParseDate(dateStr string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// ParseDateOrNow parses a date string, falling back to now when the string
// is empty. The second return reports whether parsing succeeded.
func ParseDateOrNow(dateStr string) (time.Time, bool) {
	if dateStr == "" {
		return time.Now(), true
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
