// Package platform provides the social platform clients the bot publishes
// through: the Twitter/X v2 API as the primary client and the v1.1 API as
// the legacy fallback when the v2 credential probe fails.
package platform

import (
	"context"
	"fmt"
)

// Credentials holds the platform keys, all supplied via environment.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
	BearerToken    string
}

// Poster is the posting surface the pipeline depends on.
type Poster interface {
	// CreatePost submits one post and returns its platform ID.
	CreatePost(ctx context.Context, text string) (string, error)
	// VerifyCredentials probes authentication and returns the account
	// username on success.
	VerifyCredentials(ctx context.Context) (string, error)
}

// Setup probes the v2 client and falls back to v1.1 when the probe fails.
// Both failing is fatal for the run.
func Setup(ctx context.Context, creds Credentials) (Poster, error) {
	return setupWith(ctx, NewV2Client(creds), NewV1Client(creds))
}

// setupWith is the probe-and-fallback flow over any two clients, split out
// so tests can drive it with fakes.
func setupWith(ctx context.Context, primary, fallback Poster) (Poster, error) {
	username, primaryErr := primary.VerifyCredentials(ctx)
	if primaryErr == nil {
		fmt.Printf("Twitter API v2 connected as @%s\n", username)
		return primary, nil
	}
	fmt.Printf("Warning: Twitter API v2 verification failed: %v\n", primaryErr)
	fmt.Printf("Falling back to Twitter API v1.1...\n")

	username, fallbackErr := fallback.VerifyCredentials(ctx)
	if fallbackErr != nil {
		return nil, fmt.Errorf("twitter setup failed on both v2 (%v) and v1.1: %w", primaryErr, fallbackErr)
	}
	fmt.Printf("Twitter API v1.1 connected as @%s\n", username)
	return fallback, nil
}
