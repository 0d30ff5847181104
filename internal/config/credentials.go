package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Credentials holds every secret the bot needs. All fields are required;
// absence of any is a startup-fatal condition checked before any network
// call is attempted.
type Credentials struct {
	GeminiAPIKey      string `validate:"required"`
	ConsumerKey       string `validate:"required"`
	ConsumerSecret    string `validate:"required"`
	AccessToken       string `validate:"required"`
	AccessTokenSecret string `validate:"required"`
	BearerToken       string `validate:"required"`
}

// envVarForField maps struct fields to the environment variables that
// supply them, for error reporting.
var envVarForField = map[string]string{
	"GeminiAPIKey":      "GEMINI_API_KEY",
	"ConsumerKey":       "TWITTER_CONSUMER_KEY",
	"ConsumerSecret":    "TWITTER_CONSUMER_SECRET",
	"AccessToken":       "TWITTER_ACCESS_TOKEN",
	"AccessTokenSecret": "TWITTER_ACCESS_TOKEN_SECRET",
	"BearerToken":       "TWITTER_BEARER_TOKEN",
}

// LoadCredentials reads the credential set from the environment.
// It does not validate; call Validate before using the result.
func LoadCredentials() *Credentials {
	return &Credentials{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		ConsumerKey:       os.Getenv("TWITTER_CONSUMER_KEY"),
		ConsumerSecret:    os.Getenv("TWITTER_CONSUMER_SECRET"),
		AccessToken:       os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessTokenSecret: os.Getenv("TWITTER_ACCESS_TOKEN_SECRET"),
		BearerToken:       os.Getenv("TWITTER_BEARER_TOKEN"),
	}
}

// Validate checks that every credential is present and, on failure, names
// every missing environment variable in one error.
func (c *Credentials) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("credential validation failed: %w", err)
	}

	missing := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		if name, ok := envVarForField[ve.Field()]; ok {
			missing = append(missing, name)
		} else {
			missing = append(missing, ve.Field())
		}
	}
	sort.Strings(missing)
	return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
}
