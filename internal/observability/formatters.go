// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nabin/rashifal-bot/internal/zodiac"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// padLine truncates and pads a line to width. Counting runes rather than
// bytes keeps Devanagari sign names from being cut mid-character and keeps
// the box edges aligned.
func padLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) > width {
		runes = append(runes[:width-3], '.', '.', '.')
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padLine(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", padLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSelection outputs the chosen sign and tone for this run.
func (p *Printer) PrintSelection(sign zodiac.Sign, tone zodiac.Tone) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sign:      %s %s (%s / %s)\n", sign.Emoji, sign.Romanized, sign.Nepali, sign.English))
	sb.WriteString(fmt.Sprintf("Tone:      %s", tone))
	p.printBox("Selection", sb.String())
}

// PrintPrompt outputs the system instruction and user prompt sent to the
// generation service.
func (p *Printer) PrintPrompt(system, user string) {
	p.printBox("System Instruction", system)
	p.printBox("Prompt", user)
}

// PrintCompletion outputs the raw completion next to its cleaned form.
func (p *Printer) PrintCompletion(raw, cleaned string) {
	var sb strings.Builder
	sb.WriteString("Raw:\n")
	sb.WriteString(raw)
	sb.WriteString("\n\nCleaned:\n")
	sb.WriteString(cleaned)
	p.printBox("Completion", sb.String())
}
