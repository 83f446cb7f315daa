package timeutil

import "time"

// DateFormat is the canonical day-key format. Keys are zero-padded so
// plain string comparison orders them chronologically.
const DateFormat = "2006-01-02"

// Period is a trailing time window selectable in the UI.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
)

// Periods lists the supported windows in paging order.
var Periods = []Period{Period7d, Period30d, Period90d}

// PeriodDays maps a window tag to its day count. Unknown tags fall back
// to 30 days, matching the default window.
func PeriodDays(p Period) int {
	switch p {
	case Period7d:
		return 7
	case Period90d:
		return 90
	default:
		return 30
	}
}

// MaxWindowDays returns the widest supported window. The scanner uses this
// as its file-level floor so switching windows never requires a re-scan.
func MaxWindowDays() int {
	maxDays := 0
	for _, p := range Periods {
		if d := PeriodDays(p); d > maxDays {
			maxDays = d
		}
	}
	return maxDays
}

// LocalMidnight zeroes the time-of-day in t's location.
func LocalMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days. Calendar arithmetic, not 24h
// multiples, so it stays correct across DST transitions.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// CutoffKeyAt returns the inclusive lower-bound day key for a window of
// the given size ending at now: the local-midnight date days-1 back.
func CutoffKeyAt(now time.Time, days int) string {
	return AddDays(LocalMidnight(now), -(days - 1)).Format(DateFormat)
}

// CutoffKey is CutoffKeyAt anchored at the current local time.
func CutoffKey(days int) string {
	return CutoffKeyAt(time.Now(), days)
}

// DayKey formats t as a day key in its own location.
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}
