package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon-booking-api/internal/utils"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in           string
		hour, minute int
		ok           bool
	}{
		{"09:30", 9, 30, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"9:30", 0, 0, false},
		{"09:60", 0, 0, false},
		{"abcde", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		h, m, ok := utils.ParseClockTime(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		if c.ok {
			assert.Equal(t, c.hour, h, c.in)
			assert.Equal(t, c.minute, m, c.in)
		}
	}
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, utils.ISOWeekday(monday))
	assert.Equal(t, 7, utils.ISOWeekday(sunday))
}

func TestRoundUpToGrid(t *testing.T) {
	base := time.Date(2025, 4, 14, 10, 7, 0, 0, time.UTC)
	rounded := utils.RoundUpToGrid(base, 15)
	assert.Equal(t, time.Date(2025, 4, 14, 10, 15, 0, 0, time.UTC), rounded)

	onGrid := time.Date(2025, 4, 14, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, onGrid, utils.RoundUpToGrid(onGrid, 15))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, utils.DaysInMonth(2025, 1))
	assert.Equal(t, 28, utils.DaysInMonth(2025, 2))
	assert.Equal(t, 29, utils.DaysInMonth(2024, 2))
	assert.Equal(t, 0, utils.DaysInMonth(2025, 0))
	assert.Equal(t, 0, utils.DaysInMonth(2025, 13))
}
