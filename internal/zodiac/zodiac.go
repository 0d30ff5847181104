// Package zodiac defines the fixed set of sign identities the bot posts as
// and the random selection of sign and tone for a single run.
package zodiac

import (
	"math/rand"
	"strings"
)

// Sign is one zodiac identity with its display metadata.
// The table is fixed at twelve entries and never mutated.
type Sign struct {
	Nepali    string // Native Devanagari name
	Romanized string // IAST romanization used in posts
	English   string // English name, never published (see normalize)
	Emoji     string
}

var signs = []Sign{
	{Nepali: "मेष", Romanized: "Meṣa", English: "Aries", Emoji: "♈"},
	{Nepali: "वृषभ", Romanized: "Vṛṣabha", English: "Taurus", Emoji: "♉"},
	{Nepali: "मिथुन", Romanized: "Mithuna", English: "Gemini", Emoji: "♊"},
	{Nepali: "कर्कट", Romanized: "Karkaṭa", English: "Cancer", Emoji: "♋"},
	{Nepali: "सिंह", Romanized: "Siṃha", English: "Leo", Emoji: "♌"},
	{Nepali: "कन्या", Romanized: "Kanyā", English: "Virgo", Emoji: "♍"},
	{Nepali: "तुला", Romanized: "Tulā", English: "Libra", Emoji: "♎"},
	{Nepali: "वृश्चिक", Romanized: "Vṛśchika", English: "Scorpio", Emoji: "♏"},
	{Nepali: "धनु", Romanized: "Dhanu", English: "Sagittarius", Emoji: "♐"},
	{Nepali: "मकर", Romanized: "Makara", English: "Capricorn", Emoji: "♑"},
	{Nepali: "कुम्भ", Romanized: "Kumbha", English: "Aquarius", Emoji: "♒"},
	{Nepali: "मीन", Romanized: "Mīna", English: "Pisces", Emoji: "♓"},
}

// Signs returns a copy of the full sign table.
func Signs() []Sign {
	out := make([]Sign, len(signs))
	copy(out, signs)
	return out
}

// Pick selects one sign uniformly at random.
func Pick(r *rand.Rand) Sign {
	return signs[r.Intn(len(signs))]
}

// ByEnglish looks up a sign by its English name, case-insensitively.
func ByEnglish(name string) (Sign, bool) {
	for _, s := range signs {
		if strings.EqualFold(s.English, name) {
			return s, true
		}
	}
	return Sign{}, false
}

// Tone is the emotional register a horoscope is written in.
type Tone string

const (
	// ToneUplifting produces warm, encouraging horoscopes.
	ToneUplifting Tone = "uplifting"
	// ToneCritical produces blunt, slightly snarky horoscopes.
	ToneCritical Tone = "critical"
)

// PickTone selects a tone by weighted coin flip. criticalWeight is the
// probability of ToneCritical and is clamped to [0, 1].
func PickTone(r *rand.Rand, criticalWeight float64) Tone {
	if criticalWeight <= 0 {
		return ToneUplifting
	}
	if criticalWeight >= 1 {
		return ToneCritical
	}
	if r.Float64() < criticalWeight {
		return ToneCritical
	}
	return ToneUplifting
}
