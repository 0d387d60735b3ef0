package engine

import "time"

const (
	FirstDay = 1
	LastDay  = 24

	DefaultTargetMonth = time.December
)

// Clock is the time source for day gating.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in local time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Used for tests and the
// SANTAEXE_TODAY development override.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Gate decides how many days are open.
type Gate struct {
	Clock       Clock
	TargetMonth time.Month
	UnlockAll   bool // development override, never set in release builds
}

// MaxUnlockedDay returns the highest openable day in [0,24].
// Months are compared as calendar months within the year, so a month before
// the target opens nothing and a month after it opens everything.
func MaxUnlockedDay(clock Clock, target time.Month, unlockAll bool) int {
	if unlockAll {
		return LastDay
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if target < time.January || target > time.December {
		target = DefaultTargetMonth
	}
	now := clock.Now()
	month, day := now.Month(), now.Day()
	switch {
	case month < target:
		return 0
	case month > target:
		return LastDay
	}
	return min(day, LastDay)
}

// MaxUnlockedDay samples the gate's clock.
func (g Gate) MaxUnlockedDay() int {
	return MaxUnlockedDay(g.Clock, g.TargetMonth, g.UnlockAll)
}

// ValidDay reports whether day is one of the 24 calendar days.
func ValidDay(day int) bool { return day >= FirstDay && day <= LastDay }
