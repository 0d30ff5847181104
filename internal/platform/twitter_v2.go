package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/oauth1"
	twitterv2 "github.com/g8rswimmer/go-twitter/v2"
)

const twitterAPIHost = "https://api.twitter.com"

// V2Client posts through the Twitter v2 API. With a full OAuth1 credential
// set the requests are signed with user context, which create-tweet
// requires; with only a bearer token the client can still verify but the
// platform will reject posting.
type V2Client struct {
	client *twitterv2.Client
}

// noopAuthorizer satisfies twitterv2.Authorizer when the underlying
// transport already signs requests (OAuth1 user context).
type noopAuthorizer struct{}

func (noopAuthorizer) Add(*http.Request) {}

// bearerAuthorizer attaches an OAuth2 bearer token.
type bearerAuthorizer struct {
	token string
}

func (a bearerAuthorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

// NewV2Client builds the v2 client from the credential set.
func NewV2Client(creds Credentials) *V2Client {
	httpClient := http.DefaultClient
	var authorizer twitterv2.Authorizer = bearerAuthorizer{token: creds.BearerToken}

	if creds.ConsumerKey != "" && creds.ConsumerSecret != "" &&
		creds.AccessToken != "" && creds.AccessSecret != "" {
		config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
		token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
		httpClient = config.Client(oauth1.NoContext, token)
		authorizer = noopAuthorizer{}
	}

	return &V2Client{
		client: &twitterv2.Client{
			Authorizer: authorizer,
			Client:     httpClient,
			Host:       twitterAPIHost,
		},
	}
}

// CreatePost submits one tweet and returns its ID.
func (c *V2Client) CreatePost(ctx context.Context, text string) (string, error) {
	resp, err := c.client.CreateTweet(ctx, twitterv2.CreateTweetRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("v2 create tweet failed: %w", err)
	}
	if resp == nil || resp.Tweet == nil {
		return "", fmt.Errorf("v2 create tweet returned no data")
	}
	return resp.Tweet.ID, nil
}

// VerifyCredentials looks up the authenticated user.
func (c *V2Client) VerifyCredentials(ctx context.Context) (string, error) {
	resp, err := c.client.AuthUserLookup(ctx, twitterv2.UserLookupOpts{})
	if err != nil {
		return "", fmt.Errorf("v2 auth user lookup failed: %w", err)
	}
	if resp == nil || resp.Raw == nil || len(resp.Raw.Users) == 0 {
		return "", fmt.Errorf("v2 auth user lookup returned no user")
	}
	return resp.Raw.Users[0].UserName, nil
}
