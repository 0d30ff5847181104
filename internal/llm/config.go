// Package llm provides the text-generation client used to draft horoscopes
// and the rate-limit retry policy around it.
package llm

import "time"

// Config holds the generation model and sampling configuration.
type Config struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32

	// MaxAttempts bounds the rate-limit retry loop; RetryDelay is the fixed
	// sleep between attempts. Errors that are not rate-limit-shaped are
	// never retried.
	MaxAttempts int
	RetryDelay  time.Duration
}

// DefaultConfig returns the default generation configuration. Horoscopes are
// one sentence, so output tokens stay small and the temperature is high
// enough to keep daily posts from repeating.
func DefaultConfig() *Config {
	return &Config{
		Model:           "gemini-2.5-flash-lite",
		Temperature:     0.8,
		MaxOutputTokens: 64,
		MaxAttempts:     3,
		RetryDelay:      15 * time.Second,
	}
}
