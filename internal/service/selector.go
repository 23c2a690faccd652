package service

import "time"

// OrdinalDay returns the zero-based day of year of t's UTC calendar day.
// Only the civil fields of the UTC instant matter, so any two moments
// that fall on the same UTC day map to the same value regardless of the
// caller's time zone or time of day.
func OrdinalDay(t time.Time) int {
	return t.UTC().YearDay() - 1
}

// DailyIndex maps a moment in time onto an index of a collection of n
// records: one step forward per UTC day, wrapping modulo n. The 365/366
// day year length is deliberately not normalized against n, so the
// sequence restarts each January 1st wherever the modulo lands.
func DailyIndex(t time.Time, n int) int {
	return OrdinalDay(t) % n
}
