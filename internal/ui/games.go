package ui

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/santa-exe/internal/registry"
)

type letterStatus int

const (
	statusAbsent letterStatus = iota
	statusPresent
	statusCorrect
)

var letterStyles = map[letterStatus]lipgloss.Style{
	statusAbsent:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#f8fafc")).Background(lipgloss.Color("#4b5563")),
	statusPresent: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#f8fafc")).Background(lipgloss.Color("#ca8a04")),
	statusCorrect: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#f8fafc")).Background(lipgloss.Color("#16a34a")),
}

var emptyCell = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#64748b"))

// scoreGuess marks exact hits green and letters found elsewhere in the
// solution yellow. Repeated letters are not counted against each other.
func scoreGuess(guess, solution []rune) []letterStatus {
	out := make([]letterStatus, len(guess))
	for i, r := range guess {
		switch {
		case i < len(solution) && solution[i] == r:
			out[i] = statusCorrect
		case slices.Contains(solution, r):
			out[i] = statusPresent
		default:
			out[i] = statusAbsent
		}
	}
	return out
}

type guessRow struct {
	letters []rune
	status  []letterStatus
}

type wordGuessPuzzle struct {
	env      puzzleEnv
	d        registry.WordGuess
	solution []rune
	input    textinput.Model
	rows     []guessRow
	notice   string
}

func newWordGuessPuzzle(env puzzleEnv, d registry.WordGuess) *wordGuessPuzzle {
	sol := []rune(normalizeWord(d.Solution))
	if d.MaxAttempts <= 0 {
		d.MaxAttempts = registry.DefaultWordGuessAttempts
	}
	return &wordGuessPuzzle{
		env:      env,
		d:        d,
		solution: sol,
		input:    newAnswerInput(strings.Repeat("_", len(sol)), len(sol)),
	}
}

func (p *wordGuessPuzzle) Capturing() bool { return true }

func (p *wordGuessPuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd, false
	}
	guess := []rune(normalizeWord(p.input.Value()))
	if len(guess) != len(p.solution) {
		p.notice = fmt.Sprintf("Das Wort hat %d Buchstaben.", len(p.solution))
		return nil, false
	}
	p.input.Reset()
	p.rows = append(p.rows, guessRow{letters: guess, status: scoreGuess(guess, p.solution)})
	if string(guess) == string(p.solution) {
		return nil, true
	}
	if len(p.rows) >= p.d.MaxAttempts {
		p.notice = "Leider verloren! Das Wort war: " + string(p.solution)
		p.rows = nil
		return nil, false
	}
	p.notice = ""
	return nil, false
}

func (p *wordGuessPuzzle) View(int) string {
	var b strings.Builder
	if p.d.Clue != "" {
		b.WriteString(p.env.st.accent.Render(p.d.Clue) + "\n\n")
	}
	for i := 0; i < p.d.MaxAttempts; i++ {
		cells := make([]string, len(p.solution))
		for j := range cells {
			if i < len(p.rows) {
				row := p.rows[i]
				cells[j] = letterStyles[row.status[j]].Render(string(row.letters[j]))
			} else {
				cells[j] = emptyCell.Render("_")
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	b.WriteString("\n" + p.input.View() + "\n")
	if p.notice != "" {
		b.WriteString(p.env.st.warning.Render(p.notice) + "\n")
	}
	b.WriteString(p.env.st.muted.Render(fmt.Sprintf("Versuch %d von %d · [enter] Raten", len(p.rows)+1, p.d.MaxAttempts)))
	return b.String()
}

// memory ---------------------------------------------------------------------

type memoryCard struct {
	image   string
	matched bool
}

type memoryPuzzle struct {
	env    puzzleEnv
	d      registry.Memory
	cards  []memoryCard
	cursor int
	open   []int
	moves  int
}

// newMemoryPuzzle deals a deck from the day's seeded stream. The seed is the
// session id, so the layout is stable within a session and changes between them.
func newMemoryPuzzle(env puzzleEnv, day int, d registry.Memory) *memoryPuzzle {
	stream := env.seed.Stream(fmt.Sprintf("day:%d:memory", day))
	images := append([]string(nil), d.Images...)
	stream.Child("images").Shuffle(len(images), func(i, j int) { images[i], images[j] = images[j], images[i] })
	pairs := min(d.Pairs, len(images))
	cards := make([]memoryCard, 0, pairs*2)
	for _, img := range images[:pairs] {
		cards = append(cards, memoryCard{image: img}, memoryCard{image: img})
	}
	stream.Child("deck").Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return &memoryPuzzle{env: env, d: d, cards: cards}
}

func (p *memoryPuzzle) Capturing() bool { return false }

func (p *memoryPuzzle) columns() int {
	if len(p.cards) <= 6 {
		return 3
	}
	return 4
}

func (p *memoryPuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if len(p.cards) == 0 {
		return nil, msg.Type == tea.KeyEnter
	}
	cols := p.columns()
	switch msg.String() {
	case "left", "h":
		if p.cursor > 0 {
			p.cursor--
		}
	case "right", "l":
		if p.cursor < len(p.cards)-1 {
			p.cursor++
		}
	case "up", "k":
		if p.cursor-cols >= 0 {
			p.cursor -= cols
		}
	case "down", "j":
		if p.cursor+cols < len(p.cards) {
			p.cursor += cols
		}
	case "enter", " ":
		return nil, p.flip(p.cursor)
	}
	return nil, false
}

func (p *memoryPuzzle) isOpen(i int) bool { return slices.Contains(p.open, i) }

func (p *memoryPuzzle) flip(i int) bool {
	if len(p.open) == 2 {
		p.open = p.open[:0]
	}
	if p.cards[i].matched || p.isOpen(i) {
		return false
	}
	p.open = append(p.open, i)
	if len(p.open) < 2 {
		return false
	}
	p.moves++
	a, b := p.open[0], p.open[1]
	if p.cards[a].image != p.cards[b].image {
		return false
	}
	p.cards[a].matched = true
	p.cards[b].matched = true
	p.open = p.open[:0]
	for _, c := range p.cards {
		if !c.matched {
			return false
		}
	}
	return true
}

func cardLabel(image string) string {
	name := strings.TrimSuffix(image, filepath.Ext(image))
	return strings.TrimPrefix(name, "memory_")
}

func (p *memoryPuzzle) View(int) string {
	var b strings.Builder
	if p.d.Clue != "" {
		b.WriteString(p.env.st.accent.Render(p.d.Clue) + "\n\n")
	}
	cols := p.columns()
	base := lipgloss.NewStyle().Width(12).Align(lipgloss.Center).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#475569"))
	var rows []string
	for start := 0; start < len(p.cards); start += cols {
		end := min(start+cols, len(p.cards))
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			c := p.cards[i]
			label := "?"
			style := base
			switch {
			case c.matched:
				label = cardLabel(c.image)
				style = style.Foreground(lipgloss.Color("#4ade80"))
			case p.isOpen(i):
				label = cardLabel(c.image)
			}
			if i == p.cursor {
				style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color("#f472b6"))
			}
			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n")
	b.WriteString(p.env.st.muted.Render(fmt.Sprintf("Züge: %d · [pfeile] bewegen · [enter] aufdecken", p.moves)))
	return b.String()
}
