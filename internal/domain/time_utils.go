package domain

import "time"

const (
	DatetimeLayout = "2006-01-02T15:04:05Z"
	QueryDate      = "2006-01-02"
	QueryTimestamp = "2006-01-02 15:04:05"
)

// DateTimeLayout returns the datetime layout
func DateTimeLayout() string {
	return DatetimeLayout
}

// FormatQueryDate renders a date for an NXQL comparison against dc:modified
func FormatQueryDate(date time.Time) string {
	return date.Format(QueryDate)
}

// FormatQueryTimestamp renders an instant for an NXQL TIMESTAMP literal, in UTC
func FormatQueryTimestamp(t time.Time) string {
	return t.UTC().Format(QueryTimestamp)
}

// ParseQueryDate parses a yyyy-mm-dd date in UTC
func ParseQueryDate(value string) (time.Time, error) {
	return time.ParseInLocation(QueryDate, value, time.UTC)
}

// EndOfDay returns the end of the day (23:59:59) of the given date.
func EndOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, date.Location())
}

// ParseTimestamp parses the RFC 3339 timestamps the automation binding returns;
// an empty or malformed value yields nil.
func ParseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &t
}
