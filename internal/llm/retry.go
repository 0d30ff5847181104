package llm

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimited is returned when every attempt was rejected as rate-limited.
var ErrRateLimited = errors.New("rate limit exhausted")

// rateLimitTokens are the substrings that mark an error as rate-limit-shaped.
// The generation service does not expose a structured code for this, so the
// error text is all there is to go on.
var rateLimitTokens = []string{"rate", "429", "limit"}

// IsRateLimited reports whether err looks like a rate-limit rejection.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, token := range rateLimitTokens {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}

// generateWithRetry runs call up to cfg.MaxAttempts times, sleeping
// cfg.RetryDelay between attempts. Only rate-limit-shaped errors are
// retried; anything else propagates immediately.
func generateWithRetry(cfg *Config, call func() (string, error)) (string, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := call()
		if err == nil {
			return text, nil
		}
		if !IsRateLimited(err) {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		lastErr = err
		if attempt < attempts {
			fmt.Printf("Warning: generation service rate-limited (attempt %d/%d), retrying in %s...\n",
				attempt, attempts, cfg.RetryDelay)
			time.Sleep(cfg.RetryDelay)
		}
	}

	return "", fmt.Errorf("%w after %d attempts: %v", ErrRateLimited, attempts, lastErr)
}
