// Package publish formats a cleaned horoscope into the final post and
// submits it through a platform client.
package publish

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nabin/rashifal-bot/internal/normalize"
	"github.com/nabin/rashifal-bot/internal/platform"
	"github.com/nabin/rashifal-bot/internal/zodiac"
)

// MaxPostLength is the platform's post length limit, in characters.
const MaxPostLength = 280

// Result describes a successfully submitted post.
type Result struct {
	Text string
	ID   string
}

// FormatPost produces the final post text: the sign's romanized name, a
// comma, then the message with its first letter capitalized and terminal
// punctuation guaranteed. A romanized-name prefix already present in the
// cleaned text is stripped before reassembly so the name never doubles.
func FormatPost(sign zodiac.Sign, text string) (string, error) {
	// Clean first: the name substitution inside Clean can itself produce a
	// leading romanized name, so the prefix strip has to run afterwards.
	message := normalize.Clean(text)
	if strings.HasPrefix(message, sign.Romanized) {
		message = strings.TrimPrefix(message, sign.Romanized)
		message = strings.TrimLeft(message, ", ")
	}
	if message == "" {
		return "", fmt.Errorf("post formatting: %w", normalize.ErrEmpty)
	}

	message = capitalizeFirst(message)
	if !strings.HasSuffix(message, ".") && !strings.HasSuffix(message, "!") && !strings.HasSuffix(message, "?") {
		message = strings.TrimRight(message, ", ") + "."
	}

	post := sign.Romanized + ", " + message
	if n := utf8.RuneCountInString(post); n > MaxPostLength {
		return "", fmt.Errorf("post is %d characters, over the %d limit", n, MaxPostLength)
	}
	return post, nil
}

// Post formats and submits one post. Submission is attempted exactly once;
// a platform failure is returned to the caller for reporting, never retried.
func Post(ctx context.Context, poster platform.Poster, sign zodiac.Sign, text string) (*Result, error) {
	post, err := FormatPost(sign, text)
	if err != nil {
		return nil, err
	}

	id, err := poster.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("posting failed: %w", err)
	}
	return &Result{Text: post, ID: id}, nil
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
