package platform

import (
	"context"
	"fmt"

	twitterv1 "github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
)

// V1Client posts through the legacy Twitter v1.1 API with OAuth1 user
// context. It exists only as the fallback when the v2 probe fails.
type V1Client struct {
	client *twitterv1.Client
}

// NewV1Client builds the v1.1 client from the OAuth1 credential set.
func NewV1Client(creds Credentials) *V1Client {
	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	return &V1Client{client: twitterv1.NewClient(httpClient)}
}

// CreatePost submits one status update and returns its ID.
// The v1.1 SDK does not take a context; cancellation rides on the
// underlying transport's defaults.
func (c *V1Client) CreatePost(_ context.Context, text string) (string, error) {
	tweet, _, err := c.client.Statuses.Update(text, nil)
	if err != nil {
		return "", fmt.Errorf("v1.1 status update failed: %w", err)
	}
	if tweet == nil {
		return "", fmt.Errorf("v1.1 status update returned no tweet")
	}
	return tweet.IDStr, nil
}

// VerifyCredentials probes v1.1 authentication.
func (c *V1Client) VerifyCredentials(_ context.Context) (string, error) {
	user, _, err := c.client.Accounts.VerifyCredentials(&twitterv1.AccountVerifyParams{})
	if err != nil {
		return "", fmt.Errorf("v1.1 verify credentials failed: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("v1.1 verify credentials returned no user")
	}
	return user.ScreenName, nil
}
