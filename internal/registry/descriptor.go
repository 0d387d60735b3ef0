package registry

import "strings"

// Kind tags a puzzle descriptor.
type Kind string

const (
	KindStory       Kind = "story"
	KindCode        Kind = "code"
	KindWordGuess   Kind = "word_guess"
	KindMemory      Kind = "memory"
	KindRiddle      Kind = "riddle"
	KindQuiz        Kind = "quiz"
	KindPartnerQuiz Kind = "partner_quiz"
	KindLetter      Kind = "letter"
	KindFinal       Kind = "final"
	KindSearch      Kind = "search"
)

var AllKinds = []Kind{KindStory, KindCode, KindWordGuess, KindMemory, KindRiddle, KindQuiz, KindPartnerQuiz, KindLetter, KindFinal, KindSearch}

// Descriptor is the static puzzle data for one day. The set of implementations
// is closed; presentation code selects a component with a type switch over the
// concrete types below.
type Descriptor interface {
	Kind() Kind
	sealed()
}

// DialogueLine is one beat of a story dialogue. Text may contain {player}.
type DialogueLine struct {
	Speaker string `yaml:"speaker"`
	Text    string `yaml:"text"`
}

// Story is the day 1 narrative: a dialogue followed by a letter.
type Story struct {
	Lines  []DialogueLine
	Letter Letter
}

// Code asks for the blank in a code snippet; "_____" marks the gap.
type Code struct {
	Snippet  string
	Solution string
}

// Blank is the gap marker inside Code snippets.
const Blank = "_____"

// Parts splits the snippet around the gap. A snippet without a gap asks for
// its result and comes back whole in before.
func (c Code) Parts() (before, after string) {
	before, after, _ = strings.Cut(c.Snippet, Blank)
	return before, after
}

// WordGuess is a letter-by-letter word guessing board.
type WordGuess struct {
	Solution    string
	Clue        string
	MaxAttempts int
}

// Memory is a pair matching grid.
type Memory struct {
	Variant string
	Clue    string
	Pairs   int
	Images  []string
}

// Riddle is a free text riddle.
type Riddle struct {
	Question string
	Solution string
}

// Quiz is a single multiple choice question.
type Quiz struct {
	Question string
	Options  []string
	Answer   int
}

// PartnerQuiz asks the selected character's trivia set.
type PartnerQuiz struct {
	Title string
}

// Letter is a narrative letter; opening and confirming it solves the day.
type Letter struct {
	Title       string `yaml:"title"`
	Subject     string `yaml:"subject"`
	Body        string `yaml:"body"`
	Sender      string `yaml:"sender"`
	SenderTitle string `yaml:"senderTitle"`
}

// Final is the closing password gate. LetterText may contain {GF_NAME}.
type Final struct {
	LetterText string
	Solution   string
}

// Text returns the letter addressed with the partner's name.
func (f Final) Text(partner string) string {
	return strings.ReplaceAll(f.LetterText, "{GF_NAME}", partner)
}

// Search is a placeholder day that is solved by continuing.
type Search struct {
	Hint string
}

func (Story) Kind() Kind       { return KindStory }
func (Code) Kind() Kind        { return KindCode }
func (WordGuess) Kind() Kind   { return KindWordGuess }
func (Memory) Kind() Kind      { return KindMemory }
func (Riddle) Kind() Kind      { return KindRiddle }
func (Quiz) Kind() Kind        { return KindQuiz }
func (PartnerQuiz) Kind() Kind { return KindPartnerQuiz }
func (Letter) Kind() Kind      { return KindLetter }
func (Final) Kind() Kind       { return KindFinal }
func (Search) Kind() Kind      { return KindSearch }

func (Story) sealed()       {}
func (Code) sealed()        {}
func (WordGuess) sealed()   {}
func (Memory) sealed()      {}
func (Riddle) sealed()      {}
func (Quiz) sealed()        {}
func (PartnerQuiz) sealed() {}
func (Letter) sealed()      {}
func (Final) sealed()       {}
func (Search) sealed()      {}
