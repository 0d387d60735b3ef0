package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCharacterSelected is returned when a save already has a character.
	ErrCharacterSelected = errors.New("character already selected")
	// ErrDayOutOfRange is returned for days outside 1..24.
	ErrDayOutOfRange = errors.New("day out of range")
	// ErrUnknownCharacter is returned for character ids that are not playable.
	ErrUnknownCharacter = errors.New("unknown character")
)

// LockedDayError is returned when a day is selected before it unlocks.
// It is meant to be shown to the player.
type LockedDayError struct {
	Day         int
	MaxUnlocked int
}

func (e LockedDayError) Error() string {
	if e.MaxUnlocked <= 0 {
		return fmt.Sprintf("day %d is locked, the calendar has not opened yet", e.Day)
	}
	return fmt.Sprintf("day %d is locked, only days up to %d are open", e.Day, e.MaxUnlocked)
}

// TransitionError is returned when an event is not accepted on the current screen.
type TransitionError struct {
	Screen Screen
	Event  Event
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("event %q not allowed on screen %q", e.Event, e.Screen)
}

// PersistError reports a failed save. The in-memory progress already holds the
// change and the full record is written again on the next mutation.
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string { return "persist progress: " + e.Err.Error() }
func (e *PersistError) Unwrap() error { return e.Err }
