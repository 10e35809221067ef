package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2025, 1, 15, 8, 16, 45, 0, Zone)
	assert.Equal(t, 8*60+16, MinuteOfDay(at))

	// A UTC instant must be converted to civil time first.
	utc := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 8*60, MinuteOfDay(utc))
}

func TestDateOf_CrossesMidnightBoundary(t *testing.T) {
	// 23:30 UTC on the 14th is already 07:30 on the 15th in civil time.
	utc := time.Date(2025, 1, 14, 23, 30, 0, 0, time.UTC)
	got := DateOf(utc)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 15, got.Day())
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("08:00")
	require.NoError(t, err)
	assert.Equal(t, 480, mins)

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("8am")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "17:30", FormatClock(1050))
	assert.Equal(t, "00:00", FormatClock(0))
}

func TestDaysInclusive(t *testing.T) {
	start, err := ParseDate("2025-01-01")
	require.NoError(t, err)
	end, err := ParseDate("2025-01-07")
	require.NoError(t, err)

	assert.Equal(t, 7, DaysInclusive(start, end))
	assert.Equal(t, 1, DaysInclusive(start, start))
	assert.Equal(t, 0, DaysInclusive(end, start))
}
