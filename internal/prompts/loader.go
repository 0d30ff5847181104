// Package prompts provides the externalized LLM prompt templates.
// Templates are stored as a JSON file and embedded at compile time.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nabin/rashifal-bot/internal/zodiac"
)

//go:embed horoscope.json
var promptFile []byte

// cache holds the parsed prompt file to avoid repeated JSON parsing.
var (
	cache   map[string]string
	cacheMu sync.RWMutex
)

// Get retrieves a prompt template by key.
// Returns an error if the key is not found.
func Get(key string) (string, error) {
	templates, err := load()
	if err != nil {
		return "", err
	}

	prompt, exists := templates[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found", key)
	}

	return prompt, nil
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. This is a simple template system for prompt customization.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// Horoscope builds the system instruction and user prompt for one sign and
// tone. The tone keys into the embedded template set; each tone carries its
// own style exemplars.
func Horoscope(sign zodiac.Sign, tone zodiac.Tone) (system, user string, err error) {
	system, err = Get("system")
	if err != nil {
		return "", "", err
	}

	template, err := Get(string(tone))
	if err != nil {
		return "", "", fmt.Errorf("no prompt template for tone %q: %w", tone, err)
	}

	user = Format(template, map[string]string{"Romanized": sign.Romanized})
	return system, user, nil
}

// load parses and caches the embedded prompt file.
func load() (map[string]string, error) {
	cacheMu.RLock()
	if cache != nil {
		defer cacheMu.RUnlock()
		return cache, nil
	}
	cacheMu.RUnlock()

	var templates map[string]string
	if err := json.Unmarshal(promptFile, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file: %w", err)
	}

	cacheMu.Lock()
	cache = templates
	cacheMu.Unlock()

	return templates, nil
}
