package contract

import "time"

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form as UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
