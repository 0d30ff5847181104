// Package normalize cleans raw generation-service output into a single
// publishable sentence. Completions arrive with generation artifacts:
// leaked instruction lines, meta-commentary prefixes, dash mannerisms,
// stray quotes, and English sign names where the romanized form is wanted.
// Clean applies a fixed, ordered rule sequence; it is deterministic and
// stable under reapplication.
package normalize

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nabin/rashifal-bot/internal/zodiac"
)

// Finalize failure modes. Callers treat both as generation failures and
// must not publish.
var (
	ErrEmpty   = errors.New("cleaned text is empty")
	ErrTooLong = errors.New("cleaned text exceeds word cutoff")
)

// dashRe folds em-dashes, en-dashes, and spaced hyphens into commas.
// Unspaced hyphens (well-known, self-doubt) are left alone.
var dashRe = regexp.MustCompile(`\s*[—–]\s*|\s+-\s+`)

// doubledCommaRe collapses comma runs the dash fold can introduce.
var doubledCommaRe = regexp.MustCompile(`,[\s,]*,`)

// instructionKeywords mark lines that echo prompt instructions rather than
// content. Matched case-insensitively as substrings of a line.
var instructionKeywords = []string{
	"must be", "should be", "critical", "mandatory", "required",
	"strict", "rule", "format:", "example:", "write for",
	"now write", "the horoscope:", "message:", "advice:",
}

// metaPrefixRes strip leading meta-commentary the model wraps around the
// actual sentence. Applied repeatedly until none match.
var metaPrefixRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(A sentence like|Something like|Could be|For example|Like this|Try this|How about):\s*`),
	regexp.MustCompile(`(?i)^(So|Could be|For example|Like this|Something like)\b[,:]?\s*`),
	regexp.MustCompile(`^-\s*`),
}

var (
	straightQuoteRe = regexp.MustCompile(`"([^"]*)"`)
	curlyQuoteRe    = regexp.MustCompile(`“([^”]*)”`)
)

// disclosurePhrases are literal giveaways removed wherever they appear,
// in both the literal and first-letter-capitalized form.
var disclosurePhrases = []string{
	"as an AI", "I cannot", "I apologize", "I understand",
	"must be a complete sentence", "ending properly",
}

// signRule carries the per-sign substitution patterns.
type signRule struct {
	english   *regexp.Regexp // English name, any case, word-bounded
	infix     *regexp.Regexp // romanized name wedged between lowercase letters
	romanized string
}

var (
	signRules []signRule

	// asSignRe reduces "as a <sign>" to the sign name itself.
	asSignRe *regexp.Regexp
	// asWordRe drops a line-leading "As a <word>, " entirely.
	asWordRe = regexp.MustCompile(`(?m)^[Aa]s an? \p{L}+[,:]?\s*`)
)

func init() {
	roms := make([]string, 0, 12)
	for _, s := range zodiac.Signs() {
		signRules = append(signRules, signRule{
			english:   regexp.MustCompile(`(?i)\b` + s.English + `\b`),
			infix:     regexp.MustCompile(`([a-z])` + regexp.QuoteMeta(s.Romanized) + `([a-z])`),
			romanized: s.Romanized,
		})
		roms = append(roms, regexp.QuoteMeta(s.Romanized))
	}
	asSignRe = regexp.MustCompile(`(?i)\bas an? (` + strings.Join(roms, "|") + `)`)
}

// Clean converts a raw completion into a single trimmed line. It never
// appends terminal punctuation; that is Finalize's job, so Clean composed
// with itself yields the same output.
func Clean(text string) string {
	text = dashRe.ReplaceAllString(text, ", ")
	text = doubledCommaRe.ReplaceAllString(text, ",")
	text = romanizeNames(text)
	text = asSignRe.ReplaceAllString(text, "$1")
	text = asWordRe.ReplaceAllString(text, "")
	text = firstContentLine(text)
	text = stripMetaPrefixes(text)
	text = straightQuoteRe.ReplaceAllString(text, "$1")
	text = curlyQuoteRe.ReplaceAllString(text, "$1")
	text = stripDisclosures(text)
	text = strings.Join(strings.Fields(text), " ")
	return strings.Trim(text, " .,;:-")
}

// Finalize enforces the terminal-punctuation contract on cleaned text.
// Empty input is a generation failure. Text already ending in terminal
// punctuation passes through unchanged. Otherwise, when maxWords > 0 and
// the text runs past it, the text is rejected rather than patched; else a
// trailing comma is trimmed and a period appended.
func Finalize(text string, maxWords int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmpty
	}
	if strings.HasSuffix(text, ".") || strings.HasSuffix(text, "!") || strings.HasSuffix(text, "?") {
		return text, nil
	}
	if maxWords > 0 && len(strings.Fields(text)) > maxWords {
		return "", ErrTooLong
	}
	return strings.TrimRight(text, ", ") + ".", nil
}

// romanizeNames replaces every English sign name (any case, possessives
// included via the trailing word boundary) with its romanized form, then
// repairs infix contamination: a romanized name accidentally landed inside
// an unrelated word, detected by a single lowercase letter on both sides.
func romanizeNames(text string) string {
	for _, r := range signRules {
		text = r.english.ReplaceAllString(text, r.romanized)
	}
	for _, r := range signRules {
		text = r.infix.ReplaceAllString(text, "$1$2")
	}
	return text
}

// firstContentLine drops instruction-echo lines and keeps the first
// surviving non-empty line. The model tends to wrap the real sentence in
// explanatory preamble or postamble.
func firstContentLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		echo := false
		for _, kw := range instructionKeywords {
			if strings.Contains(lower, kw) {
				echo = true
				break
			}
		}
		if !echo {
			return line
		}
	}
	return ""
}

func stripMetaPrefixes(text string) string {
	for {
		before := text
		for _, re := range metaPrefixRes {
			text = re.ReplaceAllString(text, "")
		}
		if text == before {
			return text
		}
		text = strings.TrimSpace(text)
	}
}

func stripDisclosures(text string) string {
	for _, phrase := range disclosurePhrases {
		text = strings.ReplaceAll(text, phrase, "")
		text = strings.ReplaceAll(text, capitalize(phrase), "")
	}
	return text
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
