// Package pipeline provides the high-level orchestration for one bot run:
// select an identity, generate a horoscope, normalize it, publish it.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nabin/rashifal-bot/internal/llm"
	"github.com/nabin/rashifal-bot/internal/normalize"
	"github.com/nabin/rashifal-bot/internal/observability"
	"github.com/nabin/rashifal-bot/internal/platform"
	"github.com/nabin/rashifal-bot/internal/prompts"
	"github.com/nabin/rashifal-bot/internal/publish"
	"github.com/nabin/rashifal-bot/internal/zodiac"
)

// Options holds configuration and collaborators for running the pipeline.
// Client and Poster are interfaces so tests can substitute fakes.
type Options struct {
	Client llm.Client
	Poster platform.Poster

	// Rand drives sign and tone selection; a time-seeded source is used
	// when nil.
	Rand *rand.Rand

	CriticalWeight float64
	MaxWords       int
	Verbose        bool
}

// Run executes one full bot run. Each invocation is independent: nothing
// persists beyond the process, and a run either publishes exactly one post
// or fails.
func Run(ctx context.Context, opts Options) error {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	fmt.Printf("Starting rashifal bot (run %s)\n", runID)
	fmt.Printf("%s\n", time.Now().Format("2006-01-02 15:04:05"))

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Step 1: Select identity and tone
	sign := zodiac.Pick(r)
	tone := zodiac.PickTone(r, opts.CriticalWeight)
	fmt.Printf("Step 1/4: Selected sign: %s (%s), tone: %s\n", sign.Romanized, sign.English, tone)
	if opts.Verbose {
		printer.PrintSelection(sign, tone)
	}

	// Step 2: Generate
	fmt.Printf("Step 2/4: Generating horoscope...\n")
	system, prompt, err := prompts.Horoscope(sign, tone)
	if err != nil {
		return fmt.Errorf("building prompt failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintPrompt(system, prompt)
	}

	raw, err := opts.Client.Generate(ctx, system, prompt)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	// Step 3: Normalize
	fmt.Printf("Step 3/4: Cleaning completion...\n")
	cleaned := normalize.Clean(raw)
	if opts.Verbose {
		printer.PrintCompletion(raw, cleaned)
	}
	horoscope, err := normalize.Finalize(cleaned, opts.MaxWords)
	if err != nil {
		return fmt.Errorf("failed to generate valid horoscope: %w", err)
	}
	fmt.Printf("Generated: %s\n", horoscope)

	// Step 4: Publish
	fmt.Printf("Step 4/4: Posting...\n")
	result, err := publish.Post(ctx, opts.Poster, sign, horoscope)
	if err != nil {
		fmt.Printf("Posting failed: %v\n", err)
		return err
	}

	fmt.Printf("Posted: %s\n", result.Text)
	fmt.Printf("Post ID: %s\n", result.ID)
	fmt.Printf("Characters: %d/%d\n", len([]rune(result.Text)), publish.MaxPostLength)
	return nil
}
