package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
	"github.com/DaanHessen/santa-exe/internal/text"
)

func testEnv(t *testing.T) puzzleEnv {
	t.Helper()
	seed, err := engine.NewSeed("puzzle-test")
	require.NoError(t, err)
	return puzzleEnv{st: newStyles(paletteFor("nordpol")), seed: seed}
}

func send(p puzzle, keys ...tea.KeyMsg) bool {
	solved := false
	for _, k := range keys {
		_, solved = p.Update(k)
	}
	return solved
}

func TestNormalizeWord(t *testing.T) {
	assert.Equal(t, "GLITZER", normalizeWord("  glitzer "))
	assert.Equal(t, "STRASSE", normalizeWord("straße"))
	assert.Equal(t, "Green", normalizeCode(" Green\n"))
}

func TestScoreGuess(t *testing.T) {
	got := scoreGuess([]rune("LEMONS"), []rune("LONELY"))
	assert.Equal(t, []letterStatus{statusCorrect, statusPresent, statusAbsent, statusPresent, statusPresent, statusAbsent}, got)
}

func TestWordGuessResetsAfterMaxAttempts(t *testing.T) {
	p := newWordGuessPuzzle(testEnv(t), registry.WordGuess{Solution: "LONELY", MaxAttempts: 5})

	assert.False(t, send(p, runes("abc"), enter))
	assert.Contains(t, p.notice, "6 Buchstaben")
	assert.Empty(t, p.rows)
	p.input.Reset()

	for i := 0; i < 4; i++ {
		assert.False(t, send(p, runes("abcdef"), enter))
	}
	assert.Len(t, p.rows, 4)
	assert.False(t, send(p, runes("abcdef"), enter))
	assert.Empty(t, p.rows)
	assert.Contains(t, p.notice, "LONELY")

	assert.True(t, send(p, runes("lonely"), enter))
}

func TestCodeViewMarksGap(t *testing.T) {
	p := newPuzzle(2, registry.Code{Snippet: "let mood = \"_____\";", Solution: "Green"}, testEnv(t))
	view := p.View(60)
	assert.Contains(t, view, text.CodeGap)
	assert.NotContains(t, view, registry.Blank)
}

func TestRiddleIgnoresCase(t *testing.T) {
	p := newPuzzle(10, registry.Riddle{Question: "?", Solution: "GLITZER"}, testEnv(t))
	assert.False(t, send(p, runes("glitter"), enter))
	assert.Equal(t, "Nope!", p.(*riddlePuzzle).feedback)
	p = newPuzzle(10, registry.Riddle{Question: "?", Solution: "GLITZER"}, testEnv(t))
	assert.True(t, send(p, runes(" glitzer "), enter))
}

func TestQuizMatchesIndex(t *testing.T) {
	p := newPuzzle(12, registry.Quiz{Question: "?", Options: []string{"a", "b", "c"}, Answer: 1}, testEnv(t))
	assert.False(t, p.Capturing())
	assert.False(t, send(p, enter))
	assert.Equal(t, "Falsch!", p.(*choicePuzzle).feedback)
	assert.True(t, send(p, down, enter))
	assert.True(t, send(newPuzzle(12, registry.Quiz{Options: []string{"a", "b"}, Answer: 1}, testEnv(t)), runes("2")))
}

func TestPartnerQuizWalksTrivia(t *testing.T) {
	reg, err := registry.Load()
	require.NoError(t, err)
	env := testEnv(t)
	prof, ok := reg.Profile(engine.CharacterParssa)
	require.True(t, ok)
	env.profile = prof
	p := newPuzzle(18, registry.PartnerQuiz{}, env).(*choicePuzzle)
	require.Len(t, p.questions, len(prof.Trivia))

	first := prof.Trivia[0]
	wrong := (first.Answer + 1) % len(first.Options)
	p.cursor = wrong
	assert.False(t, send(p, enter))
	assert.Contains(t, p.feedback, "nochmal")
	assert.Equal(t, 0, p.index)

	var solved bool
	for i, q := range prof.Trivia {
		p.cursor = q.Answer
		solved = send(p, enter)
		if i < len(prof.Trivia)-1 {
			assert.False(t, solved)
			assert.Equal(t, i+1, p.index)
		}
	}
	assert.True(t, solved)
}

func TestLetterOpensThenSolves(t *testing.T) {
	p := newPuzzle(11, registry.Letter{Title: "Brief"}, testEnv(t))
	assert.False(t, send(p, enter))
	assert.True(t, p.(*letterPuzzle).opened)
	assert.True(t, send(p, enter))
}

func TestFinalAsksForPassword(t *testing.T) {
	env := testEnv(t)
	env.profile = registry.Profile{Partner: "Juna"}
	p := newPuzzle(24, registry.Final{LetterText: "Liebe {GF_NAME}", Solution: "XMAS"}, env)
	assert.Contains(t, p.View(60), "Liebe Juna")
	assert.False(t, p.Capturing())
	assert.False(t, send(p, enter))
	require.True(t, p.Capturing())
	assert.False(t, send(p, runes("xmas!"), enter))
	assert.Contains(t, p.(*finalPuzzle).feedback, "Zugriff verweigert")
	assert.False(t, send(p, backspace))
	assert.True(t, send(p, enter))
}

func TestSearchContinues(t *testing.T) {
	p := newPuzzle(7, registry.Search{Hint: "Rentier"}, testEnv(t))
	assert.Contains(t, p.View(40), "Rentier")
	assert.True(t, send(p, enter))
}

func memoryFixture() registry.Memory {
	return registry.Memory{Pairs: 3, Images: []string{
		"memory_cake.png", "memory_gift.png", "memory_house.png", "memory_mug.png", "memory_sock.png", "memory_star.png",
	}}
}

func TestMemoryDeckIsSeeded(t *testing.T) {
	a := newMemoryPuzzle(testEnv(t), 4, memoryFixture())
	b := newMemoryPuzzle(testEnv(t), 4, memoryFixture())
	require.Len(t, a.cards, 6)
	assert.Equal(t, a.cards, b.cards)

	counts := map[string]int{}
	for _, c := range a.cards {
		counts[c.image]++
	}
	assert.Len(t, counts, 3)
	for img, n := range counts {
		assert.Equal(t, 2, n, img)
	}
}

func TestMemoryMatchesPairs(t *testing.T) {
	p := newMemoryPuzzle(testEnv(t), 4, memoryFixture())
	byImage := map[string][]int{}
	for i, c := range p.cards {
		byImage[c.image] = append(byImage[c.image], i)
	}

	// a mismatch stays open until the next flip
	var x, y int
	for i := 1; i < len(p.cards); i++ {
		if p.cards[i].image != p.cards[0].image {
			x, y = 0, i
			break
		}
	}
	assert.False(t, p.flip(x))
	assert.False(t, p.flip(y))
	assert.Len(t, p.open, 2)
	assert.Equal(t, 1, p.moves)

	var solved bool
	for _, idx := range byImage {
		assert.False(t, solved)
		p.flip(idx[0])
		solved = p.flip(idx[1])
	}
	assert.True(t, solved)
	for _, c := range p.cards {
		assert.True(t, c.matched)
	}
}
