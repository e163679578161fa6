package freshness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frostkeep/freezer-api/internal/domain/freshness"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpiresOn(t *testing.T) {
	tests := []struct {
		name   string
		dateIn time.Time
		months int
		want   time.Time
	}{
		{"plain add", date(2023, time.May, 21), 6, date(2023, time.November, 21)},
		{"year rollover", date(2023, time.November, 8), 12, date(2024, time.November, 8)},
		{"clamp to february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to short month", date(2023, time.March, 31), 1, date(2023, time.April, 30)},
		{"no clamp needed", date(2023, time.February, 28), 1, date(2023, time.March, 28)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, freshness.ExpiresOn(tt.dateIn, tt.months))
		})
	}
}

func TestEvaluateStatus(t *testing.T) {
	// Product with 6 month shelf life, stored 2023-05-21: expires 2023-11-21.
	dateIn := date(2023, time.May, 21)

	tests := []struct {
		name string
		now  time.Time
		want freshness.Status
	}{
		{"well before expiry", date(2023, time.September, 1), freshness.StatusFresh},
		{"inside lookahead window", date(2023, time.November, 10), freshness.StatusExpiringSoon},
		{"window opens 14 days out", date(2023, time.November, 7), freshness.StatusExpiringSoon},
		{"just outside window", date(2023, time.November, 6), freshness.StatusFresh},
		{"on expiry date", date(2023, time.November, 21), freshness.StatusExpired},
		{"after expiry", date(2023, time.November, 22), freshness.StatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := freshness.Evaluate(dateIn, 6, freshness.DefaultLookaheadDays, tt.now)
			assert.Equal(t, tt.want, ev.Status)
			assert.Equal(t, date(2023, time.November, 21), ev.ExpiresOn)
		})
	}
}

func TestEvaluateExpiresInDays(t *testing.T) {
	dateIn := date(2023, time.May, 21)

	ev := freshness.Evaluate(dateIn, 6, 14, date(2023, time.November, 10))
	assert.Equal(t, 11, ev.ExpiresInDays)

	ev = freshness.Evaluate(dateIn, 6, 14, date(2023, time.November, 25))
	assert.Equal(t, -4, ev.ExpiresInDays)
}

func TestEvaluateExpiresInDaysAcrossDaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Skip("tz database not available")
	}

	// 2024-03-31 is the CET to CEST transition, a 23 hour day, so the span
	// from 2024-03-20 to 2024-04-10 is not a multiple of 24h in this zone.
	dateIn := time.Date(2024, time.March, 10, 0, 0, 0, 0, loc)
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, loc)

	ev := freshness.Evaluate(dateIn, 1, freshness.DefaultLookaheadDays, now)
	assert.Equal(t, 21, ev.ExpiresInDays)
}

func TestEvaluateCustomLookahead(t *testing.T) {
	dateIn := date(2023, time.May, 21) // expires 2023-11-21

	ev := freshness.Evaluate(dateIn, 6, 30, date(2023, time.November, 1))
	assert.Equal(t, freshness.StatusExpiringSoon, ev.Status)

	// Zero falls back to the 14 day default.
	ev = freshness.Evaluate(dateIn, 6, 0, date(2023, time.November, 1))
	assert.Equal(t, freshness.StatusFresh, ev.Status)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"fresh", "expiring_soon", "expired"} {
		s, ok := freshness.ParseStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, freshness.Status(valid), s)
	}
	_, ok := freshness.ParseStatus("stale")
	assert.False(t, ok)
}
