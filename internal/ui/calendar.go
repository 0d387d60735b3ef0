package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
)

const lockedNotice = "Nicht schummeln! Dieser Tag ist noch nicht dran."

// calendarRows lays the doors out top to bottom: 24 alone, 23..2 in pairs,
// 1 alone at the bottom where the player starts.
func calendarRows() [][]int {
	rows := [][]int{{engine.LastDay}}
	for d := engine.LastDay - 1; d > engine.FirstDay; d -= 2 {
		rows = append(rows, []int{d, d - 1})
	}
	return append(rows, []int{engine.FirstDay})
}

func locateDay(rows [][]int, day int) (int, int) {
	for r, row := range rows {
		for c, d := range row {
			if d == day {
				return r, c
			}
		}
	}
	return len(rows) - 1, 0
}

// moveCursor steps through the grid; columns clamp on the single door rows.
func (m *model) moveCursor(dr, dc int) {
	rows := calendarRows()
	r, c := locateDay(rows, m.cursor)
	r = clamp(r+dr, 0, len(rows)-1)
	c = clamp(c+dc, 0, len(rows[r])-1)
	m.cursor = rows[r][c]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

const doorWidth = 14

func (m *model) renderDoor(day int, progress engine.Progress, maxDay int) string {
	p := paletteFor(m.theme)
	width := doorWidth
	if day == engine.FirstDay || day == engine.LastDay {
		width = doorWidth*2 + 2
	}
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Border(lipgloss.RoundedBorder())
	var label string
	switch {
	case progress.IsCompleted(day):
		label = fmt.Sprintf("%02d ✓", day)
		style = style.BorderForeground(p.Success).Foreground(p.Success)
	case day > maxDay:
		label = fmt.Sprintf("%02d 🔒", day)
		style = style.BorderForeground(p.Locked).Foreground(p.Locked)
	default:
		label = fmt.Sprintf("%02d 🎁", day)
		style = style.BorderForeground(giftColors[registry.RewardArt(day)]).Foreground(p.Text).Bold(true)
	}
	if day == m.cursor {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(p.AccentAlt)
	}
	return style.Render(label)
}

func (m *model) renderHome() string {
	progress := m.ctrl.Progress()
	maxDay := m.ctrl.MaxUnlockedDay()
	var rows []string
	for _, row := range calendarRows() {
		doors := make([]string, 0, len(row))
		for _, d := range row {
			doors = append(doors, m.renderDoor(d, progress, maxDay))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, doors...))
	}
	var b strings.Builder
	b.WriteString(lipgloss.JoinVertical(lipgloss.Center, rows...))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.st.warning.Render(m.notice) + "\n")
	}
	b.WriteString(m.st.muted.Render("[pfeile] wählen · [enter] öffnen · [t] theme · [q] beenden"))
	return b.String()
}
