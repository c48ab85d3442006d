package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	at := time.Date(2026, 8, 31, 17, 42, 11, 500, loc)

	got := BeginningOfDay(at)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, loc), got)
}

func TestBeginningOfMonth(t *testing.T) {
	at := time.Date(2026, 8, 31, 17, 42, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), BeginningOfMonth(at))
}

func TestDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", DayString(day))

	_, err = ParseDay("31/08/2026")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 30, DaysBetween(start, end))
	assert.Equal(t, -30, DaysBetween(end, start))
	assert.Equal(t, 0, DaysBetween(end, end))
}
