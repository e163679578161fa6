// Package freshness derives the expiry date and freshness status of a storage
// entry from its product's shelf life. All functions are pure: the reference
// date is always an explicit parameter, never a system clock read.
package freshness

import "time"

// Status classifies a storage entry relative to its expiry date.
type Status string

const (
	StatusFresh        Status = "fresh"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// DefaultLookaheadDays is the window before expiry in which an entry is
// reported as expiring soon.
const DefaultLookaheadDays = 14

// ParseStatus converts a query-parameter value into a Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusFresh, StatusExpiringSoon, StatusExpired:
		return Status(s), true
	}
	return "", false
}

// Evaluation holds the derived expiry data for a single storage entry.
type Evaluation struct {
	ExpiresOn     time.Time
	ExpiresInDays int // negative once expired
	Status        Status
}

// Evaluate computes the expiry date and status of an entry stored on dateIn
// with a shelf life of expirationMonths, as seen on the reference date now.
// lookaheadDays <= 0 falls back to DefaultLookaheadDays.
func Evaluate(dateIn time.Time, expirationMonths, lookaheadDays int, now time.Time) Evaluation {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	expiresOn := ExpiresOn(dateIn, expirationMonths)
	days := daysBetween(truncateToDay(now), expiresOn)

	status := StatusFresh
	switch {
	case days <= 0:
		status = StatusExpired
	case days <= lookaheadDays:
		status = StatusExpiringSoon
	}

	return Evaluation{
		ExpiresOn:     expiresOn,
		ExpiresInDays: days,
		Status:        status,
	}
}

// daysBetween counts calendar days from a to b. Both dates are re-anchored in
// UTC first: subtracting zoned times directly yields a non-multiple of 24h
// when a daylight saving transition falls inside the span.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// ExpiresOn returns dateIn plus the shelf life in calendar months.
func ExpiresOn(dateIn time.Time, expirationMonths int) time.Time {
	return addMonthsClamped(truncateToDay(dateIn), expirationMonths)
}

// addMonthsClamped adds calendar months, clamping the day of month to the last
// valid day of the target month (Jan 31 + 1 month = Feb 28/29). time.AddDate
// would normalize the overflow into March instead.
func addMonthsClamped(d time.Time, months int) time.Time {
	year, month, day := d.Date()
	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	if last := daysInMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, d.Location())
}

// daysInMonth returns the number of days in d's month. Day 0 of the next month
// is the last day of this one.
func daysInMonth(d time.Time) int {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location()).Day()
}

func truncateToDay(d time.Time) time.Time {
	year, month, day := d.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}
