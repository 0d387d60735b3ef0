package engine

// String backed enums; values are stable because they appear in saves and logs.

type Screen string
type CharacterID string
type Event string
type Mood string

const (
	ScreenSplash          Screen = "splash"
	ScreenIntroLetter     Screen = "intro_letter"
	ScreenCharacterSelect Screen = "character_select"
	ScreenDialogue        Screen = "dialogue"
	ScreenLawLetter       Screen = "law_letter"
	ScreenHome            Screen = "home"
	ScreenPuzzle          Screen = "puzzle"
	ScreenReveal          Screen = "reveal"
)

const (
	CharacterParssa CharacterID = "parssa"
	CharacterLinus  CharacterID = "linus"
)

var AllCharacterIDs = []CharacterID{CharacterParssa, CharacterLinus}

const (
	EventStart           Event = "start"
	EventAcknowledge     Event = "acknowledge"
	EventChooseCharacter Event = "choose_character"
	EventSelectDay       Event = "select_day"
	EventDialogueEnd     Event = "dialogue_end"
	EventLetterEnd       Event = "letter_end"
	EventSolved          Event = "solved"
	EventClose           Event = "close"
	EventTap             Event = "tap"
)

const (
	MoodGrief      Mood = "grief"
	MoodMania      Mood = "mania"
	MoodDepression Mood = "depression"
	MoodManiaII    Mood = "mania2"
	MoodHealing    Mood = "healing"
)

var AllMoods = []Mood{MoodGrief, MoodMania, MoodDepression, MoodManiaII, MoodHealing}

func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (c CharacterID) Validate() bool { return contains(AllCharacterIDs, c) }
func (m Mood) Validate() bool        { return contains(AllMoods, m) }
