package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(year int, month time.Month, day int) Clock {
	return FixedClock(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

func TestMaxUnlockedDay(t *testing.T) {
	cases := []struct {
		name  string
		clock Clock
		want  int
	}{
		{"november", at(2025, time.November, 30), 0},
		{"first of december", at(2025, time.December, 1), 1},
		{"third of december", at(2025, time.December, 3), 3},
		{"christmas eve", at(2025, time.December, 24), 24},
		{"after christmas", at(2025, time.December, 31), 24},
		{"january is before the target month", at(2026, time.January, 2), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MaxUnlockedDay(tc.clock, time.December, false))
		})
	}
}

func TestMaxUnlockedDayAfterTargetMonth(t *testing.T) {
	assert.Equal(t, LastDay, MaxUnlockedDay(at(2025, time.December, 2), time.November, false))
	assert.Equal(t, 0, MaxUnlockedDay(at(2025, time.October, 2), time.November, false))
}

func TestMaxUnlockedDayOverride(t *testing.T) {
	assert.Equal(t, LastDay, MaxUnlockedDay(at(2025, time.March, 1), time.December, true))
	assert.Equal(t, LastDay, Gate{Clock: at(2025, time.July, 4), UnlockAll: true}.MaxUnlockedDay())
}

func TestMaxUnlockedDayMonotonicInTargetMonth(t *testing.T) {
	prev := MaxUnlockedDay(at(2025, time.November, 30), time.December, false)
	for d := 1; d <= 31; d++ {
		got := MaxUnlockedDay(at(2025, time.December, d), time.December, false)
		assert.GreaterOrEqual(t, got, prev, "day %d", d)
		assert.LessOrEqual(t, got, LastDay)
		prev = got
	}
}

func TestGateFallsBackToDecember(t *testing.T) {
	g := Gate{Clock: at(2025, time.December, 5)}
	assert.Equal(t, 5, g.MaxUnlockedDay())
}
