package ui

import (
	"maps"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Locked     lipgloss.Color
}

var palettes = map[string]palette{
	"nordpol": {
		Background: lipgloss.Color("#0f172a"),
		Surface:    lipgloss.Color("#1e293b"),
		Text:       lipgloss.Color("#f1f5f9"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#dc2626"),
		AccentAlt:  lipgloss.Color("#f472b6"),
		Border:     lipgloss.Color("#475569"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Locked:     lipgloss.Color("#334155"),
	},
	"grinch": {
		Background: lipgloss.Color("#052e16"),
		Surface:    lipgloss.Color("#14532d"),
		Text:       lipgloss.Color("#ecfccb"),
		Muted:      lipgloss.Color("#a3e635"),
		Accent:     lipgloss.Color("#84cc16"),
		AccentAlt:  lipgloss.Color("#fde047"),
		Border:     lipgloss.Color("#3f6212"),
		Success:    lipgloss.Color("#bef264"),
		Warning:    lipgloss.Color("#f97316"),
		Locked:     lipgloss.Color("#1a2e05"),
	},
	"zuckerstange": {
		Background: lipgloss.Color("#fff7ed"),
		Surface:    lipgloss.Color("#ffe4e6"),
		Text:       lipgloss.Color("#1f2937"),
		Muted:      lipgloss.Color("#6b7280"),
		Accent:     lipgloss.Color("#be123c"),
		AccentAlt:  lipgloss.Color("#047857"),
		Border:     lipgloss.Color("#fda4af"),
		Success:    lipgloss.Color("#047857"),
		Warning:    lipgloss.Color("#b45309"),
		Locked:     lipgloss.Color("#d1d5db"),
	},
	"polarlicht": {
		Background: lipgloss.Color("#020617"),
		Surface:    lipgloss.Color("#0c1a2b"),
		Text:       lipgloss.Color("#e0f2fe"),
		Muted:      lipgloss.Color("#7dd3fc"),
		Accent:     lipgloss.Color("#22d3ee"),
		AccentAlt:  lipgloss.Color("#a78bfa"),
		Border:     lipgloss.Color("#1e3a5f"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Locked:     lipgloss.Color("#1e293b"),
	},
}

// moodColors follow the narrative arc of the rooms.
var moodColors = map[engine.Mood]lipgloss.Color{
	engine.MoodGrief:      lipgloss.Color("#1E293B"),
	engine.MoodMania:      lipgloss.Color("#C026D3"),
	engine.MoodDepression: lipgloss.Color("#44403C"),
	engine.MoodManiaII:    lipgloss.Color("#A855F7"),
	engine.MoodHealing:    lipgloss.Color("#0D9488"),
}

// moodColor falls back to the grief colour for moods outside the arc.
func moodColor(m engine.Mood) lipgloss.Color {
	if !m.Validate() {
		return moodColors[engine.MoodGrief]
	}
	return moodColors[m]
}

var moodLabels = map[engine.Mood]string{
	engine.MoodGrief:      "Trauer",
	engine.MoodMania:      "Manie",
	engine.MoodDepression: "Depression",
	engine.MoodManiaII:    "Manie II",
	engine.MoodHealing:    "Heilung",
}

var giftColors = map[string]lipgloss.Color{
	"gift_yellow.png": lipgloss.Color("#eab308"),
	"gift_red.png":    lipgloss.Color("#dc2626"),
	"gift_blue.png":   lipgloss.Color("#2563eb"),
	"gift_green.png":  lipgloss.Color("#16a34a"),
	"gift_purple.png": lipgloss.Color("#9333ea"),
	"gift_pink.png":   lipgloss.Color("#db2777"),
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["nordpol"]
}

// themeNames lists the palettes alphabetically; [t] on the calendar cycles them.
func themeNames() []string {
	names := slices.Collect(maps.Keys(palettes))
	slices.Sort(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	idx := max(slices.Index(names, current), 0)
	n := len(names)
	return names[((idx+step)%n+n)%n]
}

type styles struct {
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	box     lipgloss.Style
	cursor  lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		text:    lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		accent:  lipgloss.NewStyle().Foreground(p.AccentAlt).Bold(true),
		success: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		warning: lipgloss.NewStyle().Foreground(p.Warning),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(1, 2),
		cursor:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(p.AccentAlt),
	}
}
