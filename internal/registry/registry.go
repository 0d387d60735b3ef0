// Package registry holds the static calendar content: one puzzle descriptor
// per day plus the art and layout rules derived from the day number.
package registry

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

//go:embed content.yaml
var defaultContent []byte

const (
	// DefaultWordGuessAttempts is the word guess budget before the board resets.
	DefaultWordGuessAttempts = 5
	defaultMemoryPairs       = 3
)

// ConfigError reports invalid or incomplete content. It is fatal at startup.
type ConfigError struct {
	Day    int
	Reason string
}

func (e ConfigError) Error() string {
	if e.Day == 0 {
		return "registry: " + e.Reason
	}
	return fmt.Sprintf("registry: day %d: %s", e.Day, e.Reason)
}

// TriviaQuestion is one partner trivia question.
type TriviaQuestion struct {
	Question string   `yaml:"q"`
	Options  []string `yaml:"options"`
	Answer   int      `yaml:"answer"`
}

// Profile is a playable character plus the per-character content.
type Profile struct {
	engine.Character `yaml:",inline"`
	Partner          string           `yaml:"partner"`
	Trivia           []TriviaQuestion `yaml:"trivia"`
}

type rawDay struct {
	Day         int            `yaml:"day"`
	Kind        Kind           `yaml:"kind"`
	Dialogue    []DialogueLine `yaml:"dialogue"`
	Letter      *Letter        `yaml:"letter"`
	Code        string         `yaml:"code"`
	Solution    string         `yaml:"solution"`
	Clue        string         `yaml:"clue"`
	Variant     string         `yaml:"variant"`
	Pairs       int            `yaml:"pairs"`
	MaxAttempts int            `yaml:"maxAttempts"`
	Question    string         `yaml:"question"`
	Options     []string       `yaml:"options"`
	Answer      *int           `yaml:"answer"`
	Title       string         `yaml:"title"`
	LetterText  string         `yaml:"letterText"`
	Hint        string         `yaml:"hint"`
}

type rawContent struct {
	Characters   []Profile `yaml:"characters"`
	IntroLetter  Letter    `yaml:"introLetter"`
	MemoryImages []string  `yaml:"memoryImages"`
	Days         []rawDay  `yaml:"days"`
}

// Registry is read-only after Load.
type Registry struct {
	days       [engine.LastDay + 1]Descriptor
	characters []Profile
	intro      Letter
}

// Load parses the embedded content.
func Load() (*Registry, error) { return Parse(defaultContent) }

// Parse builds a registry from YAML content and checks that every day has
// exactly one valid descriptor.
func Parse(data []byte) (*Registry, error) {
	var raw rawContent
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ConfigError{Reason: "parse content: " + err.Error()}
	}
	r := &Registry{intro: raw.IntroLetter}
	if err := r.loadCharacters(raw.Characters); err != nil {
		return nil, err
	}
	for _, d := range raw.Days {
		if !engine.ValidDay(d.Day) {
			return nil, ConfigError{Day: d.Day, Reason: "day outside 1..24"}
		}
		if r.days[d.Day] != nil {
			return nil, ConfigError{Day: d.Day, Reason: "duplicate descriptor"}
		}
		desc, err := d.descriptor(raw.MemoryImages)
		if err != nil {
			return nil, err
		}
		r.days[d.Day] = desc
	}
	for day := engine.FirstDay; day <= engine.LastDay; day++ {
		if r.days[day] == nil {
			return nil, ConfigError{Day: day, Reason: "missing descriptor"}
		}
	}
	if _, ok := r.days[engine.FirstDay].(Story); !ok {
		return nil, ConfigError{Day: engine.FirstDay, Reason: "day 1 must be a story"}
	}
	return r, nil
}

func (r *Registry) loadCharacters(profiles []Profile) error {
	seen := map[engine.CharacterID]bool{}
	for _, p := range profiles {
		if !p.ID.Validate() {
			return ConfigError{Reason: fmt.Sprintf("unknown character %q", p.ID)}
		}
		if seen[p.ID] {
			return ConfigError{Reason: fmt.Sprintf("duplicate character %q", p.ID)}
		}
		for i, q := range p.Trivia {
			if len(q.Options) == 0 || q.Answer < 0 || q.Answer >= len(q.Options) {
				return ConfigError{Reason: fmt.Sprintf("character %q trivia %d: answer index out of range", p.ID, i)}
			}
		}
		seen[p.ID] = true
		r.characters = append(r.characters, p)
	}
	for _, id := range engine.AllCharacterIDs {
		if !seen[id] {
			return ConfigError{Reason: fmt.Sprintf("missing character %q", id)}
		}
	}
	return nil
}

func (d rawDay) descriptor(memoryImages []string) (Descriptor, error) {
	fail := func(reason string) (Descriptor, error) { return nil, ConfigError{Day: d.Day, Reason: reason} }
	if !slices.Contains(AllKinds, d.Kind) {
		return fail(fmt.Sprintf("unknown kind %q", d.Kind))
	}
	switch d.Kind {
	case KindStory:
		if len(d.Dialogue) == 0 || d.Letter == nil {
			return fail("story needs dialogue and a letter")
		}
		return Story{Lines: d.Dialogue, Letter: *d.Letter}, nil
	case KindCode:
		if d.Code == "" || d.Solution == "" {
			return fail("code needs a snippet and a solution")
		}
		return Code{Snippet: d.Code, Solution: d.Solution}, nil
	case KindWordGuess:
		if d.Solution == "" {
			return fail("word guess needs a solution")
		}
		attempts := d.MaxAttempts
		if attempts <= 0 {
			attempts = DefaultWordGuessAttempts
		}
		return WordGuess{Solution: strings.ToUpper(d.Solution), Clue: d.Clue, MaxAttempts: attempts}, nil
	case KindMemory:
		pairs := d.Pairs
		if pairs <= 0 {
			pairs = defaultMemoryPairs
		}
		if len(memoryImages) < pairs {
			return fail(fmt.Sprintf("memory needs %d images, content has %d", pairs, len(memoryImages)))
		}
		return Memory{Variant: d.Variant, Clue: d.Clue, Pairs: pairs, Images: memoryImages}, nil
	case KindRiddle:
		if d.Question == "" || d.Solution == "" {
			return fail("riddle needs a question and a solution")
		}
		return Riddle{Question: d.Question, Solution: d.Solution}, nil
	case KindQuiz:
		if d.Answer == nil || *d.Answer < 0 || *d.Answer >= len(d.Options) {
			return fail("quiz answer index out of range")
		}
		return Quiz{Question: d.Question, Options: d.Options, Answer: *d.Answer}, nil
	case KindPartnerQuiz:
		return PartnerQuiz{Title: d.Title}, nil
	case KindLetter:
		if d.Letter == nil {
			return fail("letter needs a letter body")
		}
		return *d.Letter, nil
	case KindFinal:
		if d.LetterText == "" || d.Solution == "" {
			return fail("final needs letter text and a password")
		}
		return Final{LetterText: d.LetterText, Solution: strings.ToUpper(d.Solution)}, nil
	case KindSearch:
		return Search{Hint: d.Hint}, nil
	}
	return fail(fmt.Sprintf("kind %q has no descriptor", d.Kind))
}

// Describe returns the descriptor for day, or ErrDayOutOfRange.
func (r *Registry) Describe(day int) (Descriptor, error) {
	if !engine.ValidDay(day) {
		return nil, fmt.Errorf("describe day %d: %w", day, engine.ErrDayOutOfRange)
	}
	return r.days[day], nil
}

// Characters lists the selectable characters in content order.
func (r *Registry) Characters() []Profile {
	return append([]Profile{}, r.characters...)
}

// Profile looks up a character's content.
func (r *Registry) Profile(id engine.CharacterID) (Profile, bool) {
	for _, p := range r.characters {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// IntroLetter is the letter shown before character selection.
func (r *Registry) IntroLetter() Letter { return r.intro }

// Dialogue returns the day 1 lines addressed to player.
func (r *Registry) Dialogue(player string) []DialogueLine {
	story, _ := r.days[engine.FirstDay].(Story)
	out := make([]DialogueLine, len(story.Lines))
	for i, l := range story.Lines {
		out[i] = DialogueLine{Speaker: l.Speaker, Text: strings.ReplaceAll(l.Text, "{player}", player)}
	}
	return out
}

// LawLetter is the second beat of the day 1 story.
func (r *Registry) LawLetter() Letter {
	story, _ := r.days[engine.FirstDay].(Story)
	return story.Letter
}
