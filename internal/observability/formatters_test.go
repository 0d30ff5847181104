package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabin/rashifal-bot/internal/zodiac"
)

func TestPadLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "short ascii", line: "hi", want: "hi        "},
		{name: "exact width", line: "0123456789", want: "0123456789"},
		{name: "truncated ascii", line: "01234567890", want: "0123456..."},
		{name: "devanagari padded", line: "मेष राशि", want: "मेष राशि  "},
		{name: "devanagari truncated", line: "वृश्चिक राशिफल आज", want: "वृश्चिक..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padLine(tt.line, 10)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, 10, utf8.RuneCountInString(got))
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestPrintSelection_BoxEdgesAligned(t *testing.T) {
	sign, ok := zodiac.ByEnglish("Scorpio")
	require.True(t, ok)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintSelection(sign, zodiac.ToneCritical)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		// Every row of the box is the same rune width, Devanagari included.
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}

	assert.Contains(t, buf.String(), sign.Romanized)
}

func TestPrintCompletion_LongLineTruncatedOnRuneBoundary(t *testing.T) {
	raw := strings.Repeat("वृश्चिक ", 20)

	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompletion(raw, "cleaned")

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, out, "...")
}
