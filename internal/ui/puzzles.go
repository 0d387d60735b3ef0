package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/santa-exe/internal/engine"
	"github.com/DaanHessen/santa-exe/internal/registry"
	"github.com/DaanHessen/santa-exe/internal/text"
)

// puzzle is one day's interactive component. Update reports solved=true once
// the player satisfied it; the model then fires the Solved event.
type puzzle interface {
	Update(msg tea.KeyMsg) (cmd tea.Cmd, solved bool)
	View(width int) string
	// Capturing is true while a text field owns the keyboard.
	Capturing() bool
}

type puzzleEnv struct {
	st       styles
	renderer *text.Renderer
	profile  registry.Profile
	seed     engine.Seed
}

func (e puzzleEnv) markdown(md string, width int) string {
	if e.renderer == nil {
		return md
	}
	return e.renderer.Render(md, width)
}

func newPuzzle(day int, d registry.Descriptor, env puzzleEnv) puzzle {
	switch v := d.(type) {
	case registry.Story:
		return &continuePuzzle{env: env, hint: "Die Geschichte wartet schon auf dich."}
	case registry.Code:
		return &codePuzzle{env: env, d: v, input: newAnswerInput("...", 0)}
	case registry.WordGuess:
		return newWordGuessPuzzle(env, v)
	case registry.Memory:
		return newMemoryPuzzle(env, day, v)
	case registry.Riddle:
		return &riddlePuzzle{env: env, d: v, input: newAnswerInput("Antwort...", 0)}
	case registry.Quiz:
		return &choicePuzzle{env: env, questions: []registry.TriviaQuestion{{Question: v.Question, Options: v.Options, Answer: v.Answer}}, wrong: "Falsch!"}
	case registry.PartnerQuiz:
		return &choicePuzzle{
			env:       env,
			title:     v.Title,
			questions: env.profile.Trivia,
			wrong:     "Das würde sie dir übel nehmen! Versuch's nochmal.",
		}
	case registry.Letter:
		return &letterPuzzle{env: env, d: v}
	case registry.Final:
		return &finalPuzzle{env: env, d: v, input: newAnswerInput("CODE", 0)}
	case registry.Search:
		return &continuePuzzle{env: env, hint: "🔍 Finde: " + v.Hint}
	default:
		return &continuePuzzle{env: env}
	}
}

func newAnswerInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	if limit > 0 {
		in.CharLimit = limit
	}
	in.Focus()
	return in
}

// codePuzzle ----------------------------------------------------------------

type codePuzzle struct {
	env      puzzleEnv
	d        registry.Code
	input    textinput.Model
	feedback string
}

func (p *codePuzzle) Capturing() bool { return true }

func (p *codePuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyEnter {
		if normalizeCode(p.input.Value()) == normalizeCode(p.d.Solution) {
			return nil, true
		}
		p.feedback = "Syntax Error!"
		return nil, false
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.feedback = ""
	return cmd, false
}

func (p *codePuzzle) View(width int) string {
	var b strings.Builder
	b.WriteString(p.env.markdown(text.CodeMarkdown(p.d), width))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")
	if p.feedback != "" {
		b.WriteString(p.env.st.warning.Render(p.feedback) + "\n")
	}
	b.WriteString(p.env.st.muted.Render("[enter] Ausführen"))
	return b.String()
}

// riddlePuzzle --------------------------------------------------------------

type riddlePuzzle struct {
	env      puzzleEnv
	d        registry.Riddle
	input    textinput.Model
	feedback string
}

func (p *riddlePuzzle) Capturing() bool { return true }

func (p *riddlePuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyEnter {
		if normalizeWord(p.input.Value()) == normalizeWord(p.d.Solution) {
			return nil, true
		}
		p.feedback = "Nope!"
		return nil, false
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.feedback = ""
	return cmd, false
}

func (p *riddlePuzzle) View(width int) string {
	var b strings.Builder
	b.WriteString(p.env.st.title.Render(p.d.Question) + "\n\n")
	b.WriteString(p.input.View() + "\n")
	if p.feedback != "" {
		b.WriteString(p.env.st.warning.Render(p.feedback) + "\n")
	}
	b.WriteString(p.env.st.muted.Render("[enter] Lösen"))
	return b.String()
}

// choicePuzzle covers the single quiz and the multi question partner quiz.
type choicePuzzle struct {
	env       puzzleEnv
	title     string
	questions []registry.TriviaQuestion
	index     int
	cursor    int
	wrong     string
	feedback  string
}

func (p *choicePuzzle) Capturing() bool { return false }

func (p *choicePuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if len(p.questions) == 0 {
		return nil, msg.Type == tea.KeyEnter
	}
	q := p.questions[p.index]
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(q.Options)-1 {
			p.cursor++
		}
	case "enter", " ":
		return nil, p.answer(p.cursor)
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(q.Options) {
			p.cursor = n - 1
			return nil, p.answer(p.cursor)
		}
	}
	return nil, false
}

func (p *choicePuzzle) answer(option int) bool {
	if option != p.questions[p.index].Answer {
		p.feedback = p.wrong
		return false
	}
	p.feedback = ""
	if p.index < len(p.questions)-1 {
		p.index++
		p.cursor = 0
		return false
	}
	return true
}

func (p *choicePuzzle) View(width int) string {
	var b strings.Builder
	if len(p.questions) > 1 {
		var dots strings.Builder
		for i := range p.questions {
			if i <= p.index {
				dots.WriteString(p.env.st.accent.Render("━━"))
			} else {
				dots.WriteString(p.env.st.muted.Render("·"))
			}
			dots.WriteString(" ")
		}
		b.WriteString(dots.String() + "\n\n")
	}
	if p.title != "" {
		b.WriteString(p.env.st.title.Render(p.title) + "\n")
	}
	if len(p.questions) == 0 {
		b.WriteString(p.env.st.muted.Render("Keine Fragen hinterlegt. [enter] Weiter"))
		return b.String()
	}
	q := p.questions[p.index]
	b.WriteString(p.env.st.accent.Render(q.Question) + "\n\n")
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if i == p.cursor {
			b.WriteString(p.env.st.title.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(p.env.st.text.Render("  "+line) + "\n")
		}
	}
	if p.feedback != "" {
		b.WriteString("\n" + p.env.st.warning.Render(p.feedback) + "\n")
	}
	return b.String()
}

// letterPuzzle opens on the first confirm and solves on the second.
type letterPuzzle struct {
	env    puzzleEnv
	d      registry.Letter
	opened bool
}

func (p *letterPuzzle) Capturing() bool { return false }

func (p *letterPuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type != tea.KeyEnter && msg.String() != " " {
		return nil, false
	}
	if !p.opened {
		p.opened = true
		return nil, false
	}
	return nil, true
}

func (p *letterPuzzle) View(width int) string {
	if !p.opened {
		return p.env.st.title.Render("✉  "+p.d.Title) + "\n\n" + p.env.st.muted.Render("[enter] Brief öffnen")
	}
	return p.env.markdown(text.LetterMarkdown(p.d), width) + "\n\n" + p.env.st.muted.Render("[enter] Weiter")
}

// finalPuzzle shows the delivery letter, then asks for the password.
type finalPuzzle struct {
	env      puzzleEnv
	d        registry.Final
	input    textinput.Model
	askPass  bool
	feedback string
}

func (p *finalPuzzle) Capturing() bool { return p.askPass }

func (p *finalPuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !p.askPass {
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			p.askPass = true
		}
		return nil, false
	}
	if msg.Type == tea.KeyEnter {
		if normalizeWord(p.input.Value()) == normalizeWord(p.d.Solution) {
			return nil, true
		}
		p.feedback = "Zugriff verweigert. Falsches Passwort."
		return nil, false
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.feedback = ""
	return cmd, false
}

func (p *finalPuzzle) View(width int) string {
	if !p.askPass {
		head := p.env.st.muted.Render("NORTHSTAR DELIVERY SERVICES")
		body := p.env.markdown(text.FinalMarkdown(p.d, p.env.profile.Partner), width)
		return head + "\n\n" + body + "\n\n" + p.env.st.muted.Render("(Enter für Passworteingabe)")
	}
	var b strings.Builder
	b.WriteString(p.env.st.title.Render("🔒 2FA Passwort eingeben") + "\n\n")
	b.WriteString(p.input.View() + "\n")
	if p.feedback != "" {
		b.WriteString(p.env.st.warning.Render(p.feedback) + "\n")
	}
	b.WriteString(p.env.st.muted.Render("[enter] VERIFIZIEREN"))
	return b.String()
}

// continuePuzzle is solved by confirming.
type continuePuzzle struct {
	env  puzzleEnv
	hint string
}

func (p *continuePuzzle) Capturing() bool { return false }

func (p *continuePuzzle) Update(msg tea.KeyMsg) (tea.Cmd, bool) {
	return nil, msg.Type == tea.KeyEnter || msg.String() == " "
}

func (p *continuePuzzle) View(int) string {
	var b strings.Builder
	if p.hint != "" {
		b.WriteString(p.env.st.accent.Render(p.hint) + "\n\n")
	}
	b.WriteString(p.env.st.muted.Render("[enter] Weiter"))
	return b.String()
}
