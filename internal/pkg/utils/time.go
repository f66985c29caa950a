package utils

import "time"

// NowUTC returns current timestamp in UTC timezone.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// UnixMillis returns t as epoch milliseconds, the unit of RouterState.LastUpdate.
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatRFC3339 renders t in UTC with nanosecond precision for storage.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
