package engine

import (
	"fmt"
	"slices"
)

// Character is the identity picked once per playthrough.
type Character struct {
	ID          CharacterID `json:"id" yaml:"id"`
	DisplayName string      `json:"displayName" yaml:"displayName"`
	AvatarRef   string      `json:"avatarRef" yaml:"avatarRef"`
}

// Progress is the persisted save record. Values are treated as immutable:
// every mutation returns a new record and leaves the receiver untouched.
type Progress struct {
	Character     *Character `json:"character"`
	CompletedDays []int      `json:"completedDays"` // sorted, unique
	CurrentDay    int        `json:"currentDay"`
}

// NewProgress returns the empty first-run record.
func NewProgress() Progress {
	return Progress{CompletedDays: []int{}, CurrentDay: FirstDay}
}

// IsCompleted reports whether day has been awarded.
func (p Progress) IsCompleted(day int) bool {
	_, ok := slices.BinarySearch(p.CompletedDays, day)
	return ok
}

// Pills is the number of completed days, shown as the collectible counter.
func (p Progress) Pills() int { return len(p.CompletedDays) }

// HasCharacter reports whether the one-time selection already happened.
func (p Progress) HasCharacter() bool { return p.Character != nil }

func (p Progress) clone() Progress {
	out := Progress{CurrentDay: p.CurrentDay, CompletedDays: make([]int, len(p.CompletedDays))}
	copy(out.CompletedDays, p.CompletedDays)
	if p.Character != nil {
		c := *p.Character
		out.Character = &c
	}
	return out
}

// MarkCompleted records day as completed. Re-marking a completed day returns
// an equal record. The frontier only advances when day is newly added and
// equals CurrentDay.
func (p Progress) MarkCompleted(day int) (Progress, error) {
	if !ValidDay(day) {
		return p, fmt.Errorf("mark day %d: %w", day, ErrDayOutOfRange)
	}
	i, found := slices.BinarySearch(p.CompletedDays, day)
	if found {
		return p.clone(), nil
	}
	out := p.clone()
	out.CompletedDays = slices.Insert(out.CompletedDays, i, day)
	if day == out.CurrentDay {
		out.CurrentDay = min(out.CurrentDay+1, LastDay)
	}
	return out, nil
}

// SelectCharacter freezes the playthrough's character. A second call is a
// caller bug and fails with ErrCharacterSelected.
func (p Progress) SelectCharacter(c Character) (Progress, error) {
	if p.Character != nil {
		return p, ErrCharacterSelected
	}
	if !c.ID.Validate() {
		return p, fmt.Errorf("select %q: %w", c.ID, ErrUnknownCharacter)
	}
	out := p.clone()
	out.Character = &c
	return out, nil
}

// Normalize validates a decoded record, sorting and de-duplicating completed
// days. Any out-of-range value makes the whole record invalid.
func (p Progress) Normalize() (Progress, error) {
	if p.CurrentDay == 0 {
		p.CurrentDay = FirstDay
	}
	if !ValidDay(p.CurrentDay) {
		return Progress{}, fmt.Errorf("current day %d: %w", p.CurrentDay, ErrDayOutOfRange)
	}
	if p.Character != nil && !p.Character.ID.Validate() {
		return Progress{}, fmt.Errorf("character %q: %w", p.Character.ID, ErrUnknownCharacter)
	}
	out := p.clone()
	for _, d := range out.CompletedDays {
		if !ValidDay(d) {
			return Progress{}, fmt.Errorf("completed day %d: %w", d, ErrDayOutOfRange)
		}
	}
	slices.Sort(out.CompletedDays)
	out.CompletedDays = slices.Compact(out.CompletedDays)
	return out, nil
}

// Equal compares two records by value.
func (p Progress) Equal(o Progress) bool {
	if p.CurrentDay != o.CurrentDay || !slices.Equal(p.CompletedDays, o.CompletedDays) {
		return false
	}
	if (p.Character == nil) != (o.Character == nil) {
		return false
	}
	return p.Character == nil || *p.Character == *o.Character
}
