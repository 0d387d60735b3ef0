// Package text turns narrative content into markdown and renders it for the
// terminal.
package text

import (
	"fmt"
	"strings"

	"github.com/DaanHessen/santa-exe/internal/registry"
)

var speakerLabels = map[string]string{
	"fairies": "Feen",
}

// SpeakerLabel is the display name of a dialogue speaker.
func SpeakerLabel(speaker string) string {
	if l, ok := speakerLabels[speaker]; ok {
		return l
	}
	return speaker
}

// LetterMarkdown lays a letter out with its heading, subject and signature.
func LetterMarkdown(l registry.Letter) string {
	var b strings.Builder
	if l.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", l.Title)
	}
	if l.Subject != "" {
		fmt.Fprintf(&b, "**%s**\n\n", l.Subject)
	}
	b.WriteString(strings.TrimSpace(l.Body))
	b.WriteString("\n\n")
	if l.Sender != "" {
		fmt.Fprintf(&b, "_%s_", l.Sender)
		if l.SenderTitle != "" {
			fmt.Fprintf(&b, "  \n%s", l.SenderTitle)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// DialogueMarkdown renders one dialogue beat.
func DialogueMarkdown(line registry.DialogueLine) string {
	return fmt.Sprintf("**%s:** %s\n", SpeakerLabel(line.Speaker), line.Text)
}

// FinalMarkdown is the day 24 delivery letter addressed with partner.
func FinalMarkdown(f registry.Final, partner string) string {
	return strings.TrimSpace(f.Text(partner)) + "\n"
}

// CodeGap replaces the blank in rendered snippets.
const CodeGap = "[ ??? ]"

// CodeMarkdown shows a fill-in snippet as a fenced block with the gap marked.
// Snippets without a gap are shown as they are.
func CodeMarkdown(c registry.Code) string {
	snippet := c.Snippet
	if before, after := c.Parts(); before != c.Snippet {
		snippet = before + CodeGap + after
	}
	return "```js\n" + strings.TrimRight(snippet, "\n") + "\n```\n"
}
