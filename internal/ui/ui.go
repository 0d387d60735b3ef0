package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
	"github.com/DaanHessen/santa-exe/internal/text"
)

const (
	refreshInterval = time.Minute
	maxTextWidth    = 72
	replayBanner    = "✅ Du hast Santa für heute schon seine Pille gegeben."
)

type refreshMsg struct{}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

type model struct {
	ctx      context.Context
	ctrl     *engine.Controller
	reg      *registry.Registry
	renderer *text.Renderer
	seed     engine.Seed
	log      *slog.Logger
	theme    string
	st       styles
	width    int
	height   int

	// screen and day the sub state below belongs to
	screen engine.Screen
	day    int

	cursor     int
	notice     string
	charCursor int
	line       int
	lawOpen    bool
	puzzle     puzzle
}

func newModel(ctx context.Context, deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	m := model{
		ctx:      ctx,
		ctrl:     deps.Controller,
		reg:      deps.Registry,
		renderer: deps.Renderer,
		seed:     deps.Seed,
		log:      log,
		theme:    deps.Theme,
		st:       newStyles(paletteFor(deps.Theme)),
	}
	m.sync()
	return m
}

// sync resets per screen state whenever the controller moved to another
// screen or day.
func (m *model) sync() {
	st := m.ctrl.State()
	if st.Screen == m.screen && st.SelectedDay == m.day {
		return
	}
	m.screen, m.day = st.Screen, st.SelectedDay
	m.line = 0
	m.lawOpen = false
	m.notice = ""
	m.puzzle = nil
	switch st.Screen {
	case engine.ScreenHome:
		m.cursor = clamp(m.ctrl.Progress().CurrentDay, engine.FirstDay, engine.LastDay)
	case engine.ScreenPuzzle:
		m.puzzle = m.buildPuzzle(st.SelectedDay)
	}
}

func (m *model) profile() registry.Profile {
	p := m.ctrl.Progress()
	if p.Character == nil {
		return registry.Profile{}
	}
	prof, ok := m.reg.Profile(p.Character.ID)
	if !ok {
		return registry.Profile{Character: *p.Character}
	}
	return prof
}

func (m *model) buildPuzzle(day int) puzzle {
	env := puzzleEnv{st: m.st, renderer: m.renderer, profile: m.profile(), seed: m.seed}
	d, err := m.reg.Describe(day)
	if err != nil {
		m.log.Error("describe day", "day", day, "err", err)
		return &continuePuzzle{env: env}
	}
	return newPuzzle(day, d, env)
}

// apply surfaces a controller error to the player and resyncs.
func (m *model) apply(err error) {
	var locked engine.LockedDayError
	var perr *engine.PersistError
	switch {
	case err == nil:
	case errors.As(err, &locked):
		m.notice = lockedNotice
	case errors.As(err, &perr):
		// kept in memory, the footer shows ctrl.Warning
	default:
		m.log.Debug("event rejected", "screen", m.screen, "err", err)
	}
	m.sync()
}

func (m *model) capturing() bool {
	return m.puzzle != nil && m.puzzle.Capturing()
}

func (m *model) textWidth() int {
	if m.width <= 0 {
		return maxTextWidth
	}
	return clamp(m.width-4, 20, maxTextWidth)
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return refreshTick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case refreshMsg:
		m.ctrl.Refresh()
		return m, refreshTick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.String() == "q" && !m.capturing() {
			return m, tea.Quit
		}
		cmd := m.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

func isConfirm(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyEnter || msg.String() == " "
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.screen {
	case engine.ScreenSplash:
		m.apply(m.ctrl.Start())
	case engine.ScreenIntroLetter:
		if isConfirm(msg) {
			m.apply(m.ctrl.Acknowledge())
		}
	case engine.ScreenCharacterSelect:
		chars := m.reg.Characters()
		switch msg.String() {
		case "left", "h", "up", "k":
			m.charCursor = clamp(m.charCursor-1, 0, len(chars)-1)
		case "right", "l", "down", "j":
			m.charCursor = clamp(m.charCursor+1, 0, len(chars)-1)
		case "enter", " ":
			if len(chars) > 0 {
				m.apply(m.ctrl.ChooseCharacter(m.ctx, chars[m.charCursor].Character))
			}
		}
	case engine.ScreenDialogue:
		switch {
		case msg.Type == tea.KeyEsc:
			m.apply(m.ctrl.Close())
		case isConfirm(msg):
			m.line++
			if m.line >= len(m.dialogue()) {
				m.apply(m.ctrl.FinishDialogue())
			}
		}
	case engine.ScreenLawLetter:
		switch {
		case msg.Type == tea.KeyEsc:
			m.apply(m.ctrl.Close())
		case isConfirm(msg) && !m.lawOpen:
			m.lawOpen = true
		case isConfirm(msg):
			m.apply(m.ctrl.FinishLawLetter(m.ctx))
		}
	case engine.ScreenHome:
		m.notice = ""
		switch msg.String() {
		case "up", "k":
			m.moveCursor(-1, 0)
		case "down", "j":
			m.moveCursor(1, 0)
		case "left", "h":
			m.moveCursor(0, -1)
		case "right", "l":
			m.moveCursor(0, 1)
		case "t":
			m.theme = nextThemeName(m.theme, 1)
			m.st = newStyles(paletteFor(m.theme))
		case "enter", " ":
			m.apply(m.ctrl.SelectDay(m.cursor))
		}
	case engine.ScreenPuzzle:
		if msg.Type == tea.KeyEsc {
			m.apply(m.ctrl.Close())
			return nil
		}
		if m.puzzle == nil {
			return nil
		}
		cmd, solved := m.puzzle.Update(msg)
		if solved {
			m.apply(m.ctrl.Solved(m.ctx))
		}
		return cmd
	case engine.ScreenReveal:
		if isConfirm(msg) {
			m.apply(m.ctrl.Tap())
		}
	}
	return nil
}

func (m *model) dialogue() []registry.DialogueLine {
	return m.reg.Dialogue(m.profile().DisplayName)
}

// views ------------------------------------------------------------------------

func (m model) View() string {
	var body string
	switch m.screen {
	case engine.ScreenSplash:
		return m.renderSplash()
	case engine.ScreenIntroLetter:
		body = m.renderIntro()
	case engine.ScreenCharacterSelect:
		body = m.renderCharacterSelect()
	case engine.ScreenDialogue:
		body = m.renderDialogue()
	case engine.ScreenLawLetter:
		body = m.renderLawLetter()
	case engine.ScreenHome:
		body = m.renderHome()
	case engine.ScreenPuzzle:
		body = m.renderPuzzle()
	case engine.ScreenReveal:
		body = m.renderReveal()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), "", body, m.renderBottomBar())
}

func (m *model) renderTopBar() string {
	left := m.st.title.Render("SANTA.EXE")
	p := m.ctrl.Progress()
	if p.Character != nil {
		left += "  " + m.st.text.Render(p.Character.DisplayName)
	}
	right := m.st.accent.Render(fmt.Sprintf("💊 %d / %d", p.Pills(), engine.LastDay))
	gap := max(m.textWidth()-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap) + right
}

func (m *model) renderBottomBar() string {
	if w := m.ctrl.Warning(); w != nil {
		return "\n" + m.st.warning.Render("⚠ Fortschritt nicht gespeichert, neuer Versuch beim nächsten Schritt.")
	}
	return ""
}

func (m *model) renderSplash() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(paletteFor(m.theme).Accent).Render("S A N T A . E X E")
	hint := m.st.muted.Render("(Beliebige Taste zum Starten)")
	block := lipgloss.JoinVertical(lipgloss.Center, title, "", hint)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
	}
	return block
}

func (m *model) markdown(md string) string {
	if m.renderer == nil {
		return md
	}
	return m.renderer.Render(md, m.textWidth())
}

func (m *model) renderIntro() string {
	return m.markdown(text.LetterMarkdown(m.reg.IntroLetter())) + "\n\n" + m.st.muted.Render("[enter] Weiter")
}

func (m *model) renderCharacterSelect() string {
	p := paletteFor(m.theme)
	chars := m.reg.Characters()
	cards := make([]string, 0, len(chars))
	for i, c := range chars {
		style := lipgloss.NewStyle().Width(22).Align(lipgloss.Center).Padding(1, 1).Border(lipgloss.RoundedBorder()).BorderForeground(p.Border)
		if i == m.charCursor {
			style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(p.AccentAlt)
		}
		cards = append(cards, style.Render(m.st.title.Render(c.DisplayName)+"\n"+m.st.muted.Render(c.AvatarRef)))
	}
	var b strings.Builder
	b.WriteString(m.st.title.Render("Wer bist du?") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")
	b.WriteString(m.st.muted.Render("[pfeile] wählen · [enter] bestätigen"))
	return b.String()
}

func (m *model) renderDialogue() string {
	lines := m.dialogue()
	if len(lines) == 0 {
		return m.st.muted.Render("[enter] Weiter")
	}
	line := lines[min(m.line, len(lines)-1)]
	return m.markdown(text.DialogueMarkdown(line)) + "\n\n" +
		m.st.muted.Render(fmt.Sprintf("(%d/%d) [enter] weiter · [esc] zurück", m.line+1, len(lines)))
}

func (m *model) renderLawLetter() string {
	l := m.reg.LawLetter()
	if !m.lawOpen {
		return m.st.title.Render("✉  "+l.Title) + "\n\n" + m.st.muted.Render("[enter] Brief öffnen")
	}
	return m.markdown(text.LetterMarkdown(l)) + "\n\n" + m.st.muted.Render("[enter] Unterschreiben")
}

// renderRoom draws the mood banner with the two room layers. Wide days span
// the full text width, the others get a framed half.
func (m *model) renderRoom(day int) string {
	mood := registry.MoodFor(day)
	room := registry.RoomArtFor(day)
	width := m.textWidth()
	if !registry.IsWideLayout(day) {
		width = width / 2
	}
	band := lipgloss.NewStyle().Width(width).Background(moodColor(mood)).Foreground(lipgloss.Color("#f8fafc")).Padding(0, 1)
	return lipgloss.JoinVertical(lipgloss.Left,
		band.Render(fmt.Sprintf("TAG %d · %s", day, moodLabels[mood])),
		band.Render(room.Top),
		band.Render(room.Bottom),
	)
}

func (m *model) renderPuzzle() string {
	var b strings.Builder
	d, _ := m.reg.Describe(m.day)
	switch d.(type) {
	case registry.Final, registry.Search:
		b.WriteString(m.st.title.Render(fmt.Sprintf("TAG %d", m.day)) + "\n\n")
	default:
		b.WriteString(m.renderRoom(m.day) + "\n\n")
	}
	if m.puzzle != nil {
		b.WriteString(m.puzzle.View(m.textWidth()) + "\n")
	}
	b.WriteString(m.st.muted.Render("[esc] schließen"))
	return b.String()
}

func (m *model) renderReveal() string {
	st := m.ctrl.State()
	p := paletteFor(m.theme)
	var b strings.Builder
	if st.Replay {
		b.WriteString(m.st.success.Render(replayBanner) + "\n\n")
	}
	card := lipgloss.NewStyle().Width(30).Align(lipgloss.Center).Padding(2, 1).Border(lipgloss.DoubleBorder())
	if !st.CardRevealed {
		gift := registry.RewardArt(st.SelectedDay)
		b.WriteString(card.BorderForeground(giftColors[gift]).Render(fmt.Sprintf("🎁\n\n%s", registry.CardBack)) + "\n")
		b.WriteString(m.st.muted.Render("[enter] Karte umdrehen"))
		return b.String()
	}
	var id engine.CharacterID
	if c := m.ctrl.Progress().Character; c != nil {
		id = c.ID
	}
	front := fmt.Sprintf("TAG %d\n\n%s", st.SelectedDay, registry.CardArt(st.SelectedDay, id))
	b.WriteString(card.BorderForeground(p.AccentAlt).Render(front) + "\n")
	b.WriteString(m.st.muted.Render("[enter] Zurück zum Kalender"))
	return b.String()
}
