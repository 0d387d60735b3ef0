package engine

import (
	"context"
	"errors"
	"log/slog"
)

// ScreenState is the navigation state. It is never persisted; every start
// begins at the splash screen and resumes at home.
type ScreenState struct {
	Screen       Screen
	SelectedDay  int // 0 when no day is selected
	CardRevealed bool
	Replay       bool // reveal opened for a day that was already completed
}

// Options configures a Controller.
type Options struct {
	Gate     Gate
	Progress Progress
	Saver    Saver
	Logger   *slog.Logger
}

// Controller is the screen state machine:
//
//	splash -> introLetter -> characterSelect -> home <-> puzzle|dialogue -> reveal -> home
//
// It owns the in-memory progress record and routes solve events through the
// SolveHandler. It is not safe for concurrent use; the UI loop drives it from
// a single goroutine.
type Controller struct {
	gate     Gate
	progress Progress
	solver   *SolveHandler
	state    ScreenState
	maxDay   int
	warning  error
	log      *slog.Logger
}

func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	p := opts.Progress
	if p.CurrentDay == 0 {
		p = NewProgress()
	}
	c := &Controller{
		gate:     opts.Gate,
		progress: p,
		solver:   NewSolveHandler(opts.Saver, log),
		state:    ScreenState{Screen: ScreenSplash},
		log:      log,
	}
	c.maxDay = c.gate.MaxUnlockedDay()
	return c
}

func (c *Controller) State() ScreenState  { return c.state }
func (c *Controller) Progress() Progress  { return c.progress.clone() }
func (c *Controller) MaxUnlockedDay() int { return c.maxDay }

// Warning returns the last persistence failure, or nil once a save succeeds.
func (c *Controller) Warning() error { return c.warning }

// Refresh re-samples the clock without changing screens. The UI calls it on a
// timer so a calendar left open past midnight picks up the new day.
func (c *Controller) Refresh() int {
	c.maxDay = c.gate.MaxUnlockedDay()
	return c.maxDay
}

func (c *Controller) enter(s ScreenState) {
	from := c.state.Screen
	c.state = s
	c.maxDay = c.gate.MaxUnlockedDay()
	if from != s.Screen {
		c.log.Debug("screen", slog.String("from", string(from)), slog.String("to", string(s.Screen)), slog.Int("max_unlocked", c.maxDay))
	}
}

func (c *Controller) expect(ev Event, screens ...Screen) error {
	for _, s := range screens {
		if c.state.Screen == s {
			return nil
		}
	}
	return TransitionError{Screen: c.state.Screen, Event: ev}
}

// Start leaves the splash screen.
func (c *Controller) Start() error {
	if err := c.expect(EventStart, ScreenSplash); err != nil {
		return err
	}
	if c.progress.HasCharacter() {
		c.enter(ScreenState{Screen: ScreenHome})
		return nil
	}
	c.enter(ScreenState{Screen: ScreenIntroLetter})
	return nil
}

// Acknowledge closes the intro letter.
func (c *Controller) Acknowledge() error {
	if err := c.expect(EventAcknowledge, ScreenIntroLetter); err != nil {
		return err
	}
	c.enter(ScreenState{Screen: ScreenCharacterSelect})
	return nil
}

// ChooseCharacter stores the character and goes straight home. Day 1's
// narrative plays when day 1 is first opened.
func (c *Controller) ChooseCharacter(ctx context.Context, ch Character) error {
	if err := c.expect(EventChooseCharacter, ScreenCharacterSelect); err != nil {
		return err
	}
	next, err := c.progress.SelectCharacter(ch)
	if err != nil {
		return err
	}
	c.progress = next
	c.log.Info("character selected", slog.String("character", string(ch.ID)))
	err = c.persist(ctx)
	c.enter(ScreenState{Screen: ScreenHome})
	return err
}

// SelectDay opens a day from the calendar. A locked day returns a
// LockedDayError and leaves the state untouched.
func (c *Controller) SelectDay(day int) error {
	if err := c.expect(EventSelectDay, ScreenHome); err != nil {
		return err
	}
	if !ValidDay(day) {
		return ErrDayOutOfRange
	}
	if day > c.maxDay {
		return LockedDayError{Day: day, MaxUnlocked: c.maxDay}
	}
	switch {
	case c.progress.IsCompleted(day):
		c.enter(ScreenState{Screen: ScreenReveal, SelectedDay: day, CardRevealed: true, Replay: true})
	case day == FirstDay:
		c.enter(ScreenState{Screen: ScreenDialogue, SelectedDay: day})
	default:
		c.enter(ScreenState{Screen: ScreenPuzzle, SelectedDay: day})
	}
	return nil
}

// FinishDialogue moves from the day 1 dialogue to the law letter.
func (c *Controller) FinishDialogue() error {
	if err := c.expect(EventDialogueEnd, ScreenDialogue); err != nil {
		return err
	}
	c.enter(ScreenState{Screen: ScreenLawLetter, SelectedDay: c.state.SelectedDay})
	return nil
}

// FinishLawLetter completes day 1 and shows its reward.
func (c *Controller) FinishLawLetter(ctx context.Context) error {
	if err := c.expect(EventLetterEnd, ScreenLawLetter); err != nil {
		return err
	}
	return c.solve(ctx)
}

// Solved is the single callback a puzzle component issues on a correct answer.
func (c *Controller) Solved(ctx context.Context) error {
	if err := c.expect(EventSolved, ScreenPuzzle); err != nil {
		return err
	}
	return c.solve(ctx)
}

func (c *Controller) solve(ctx context.Context) error {
	day := c.state.SelectedDay
	next, err := c.solver.OnSolved(ctx, c.progress, day)
	var perr *PersistError
	if err != nil && !errors.As(err, &perr) {
		return err
	}
	c.progress = next
	c.noteWarning(perr)
	c.enter(ScreenState{Screen: ScreenReveal, SelectedDay: day})
	if perr != nil {
		return perr
	}
	return nil
}

// Close abandons the open puzzle or day 1 narrative. Nothing is recorded.
func (c *Controller) Close() error {
	if err := c.expect(EventClose, ScreenPuzzle, ScreenDialogue, ScreenLawLetter); err != nil {
		return err
	}
	c.enter(ScreenState{Screen: ScreenHome})
	return nil
}

// Tap flips the reward card, or returns home once it is showing.
func (c *Controller) Tap() error {
	if err := c.expect(EventTap, ScreenReveal); err != nil {
		return err
	}
	if !c.state.CardRevealed {
		c.state.CardRevealed = true
		return nil
	}
	c.enter(ScreenState{Screen: ScreenHome})
	return nil
}

func (c *Controller) persist(ctx context.Context) error {
	err := c.solver.persist(ctx, c.progress)
	var perr *PersistError
	errors.As(err, &perr)
	c.noteWarning(perr)
	return err
}

func (c *Controller) noteWarning(perr *PersistError) {
	if perr == nil {
		c.warning = nil
		return
	}
	c.warning = perr
}
