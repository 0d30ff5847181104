package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nabin/rashifal-bot/internal/config"
	"github.com/nabin/rashifal-bot/internal/llm"
	"github.com/nabin/rashifal-bot/internal/pipeline"
	"github.com/nabin/rashifal-bot/internal/platform"
)

var postCommand = &cobra.Command{
	Use:   "post",
	Short: "Generate one horoscope and post it",
	Long: `Runs the full pipeline once: pick a random sign and tone, generate a horoscope, clean it, and post it.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values. Credentials always come from the environment (or .env): GEMINI_API_KEY, TWITTER_CONSUMER_KEY, TWITTER_CONSUMER_SECRET, TWITTER_ACCESS_TOKEN, TWITTER_ACCESS_TOKEN_SECRET, TWITTER_BEARER_TOKEN.`,
	RunE: runPostCmd,
}

var (
	postConfigPath     string
	postCriticalWeight float64
	postMaxAttempts    int
	postRetryDelay     int
	postMaxWords       int
	postModel          string
	postAPIKey         string
	postVerbose        bool
)

func init() {
	// Config file flag (processed first)
	postCommand.Flags().StringVar(&postConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	postCommand.Flags().Float64Var(&postCriticalWeight, "critical-weight", 0, "Probability of the snarky tone, 0.0-1.0 (default 0.7)")
	postCommand.Flags().IntVar(&postMaxAttempts, "max-attempts", 0, "Generation attempts on rate-limit errors (default 3)")
	postCommand.Flags().IntVar(&postRetryDelay, "retry-delay", 0, "Seconds to sleep between rate-limit retries (default 15)")
	postCommand.Flags().IntVar(&postMaxWords, "max-words", 0, "Reject unpunctuated output longer than this many words, 0 disables (default 15)")
	postCommand.Flags().StringVar(&postModel, "model", "", "Generation model name")
	postCommand.Flags().BoolVarP(&postVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	postCommand.Flags().StringVar(&postAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(postCommand)
}

// resolveConfig layers the three knob sources in priority order: defaults
// first, then the config file's explicitly set keys, then explicitly set
// CLI flags. Layering by set-ness keeps zero values meaningful, so
// --max-words 0 disables the cutoff and --critical-weight 0 means always
// uplifting.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.DefaultConfig()

	if postConfigPath != "" {
		fileCfg, err := config.LoadConfig(postConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg.ApplyTo(&cfg)
	}

	if cmd.Flags().Changed("critical-weight") {
		cfg.CriticalWeight = postCriticalWeight
	}
	if cmd.Flags().Changed("max-attempts") {
		cfg.MaxAttempts = postMaxAttempts
	}
	if cmd.Flags().Changed("retry-delay") {
		cfg.RetryDelaySeconds = postRetryDelay
	}
	if cmd.Flags().Changed("max-words") {
		cfg.MaxWords = postMaxWords
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = postModel
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = postAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = postVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runPostCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Resolve configuration (defaults, config file, CLI flags)
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Step 2: Credentials, checked before any network call
	creds := config.LoadCredentials()
	if cfg.APIKey != "" {
		creds.GeminiAPIKey = cfg.APIKey
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	// Step 3: Build the generation client
	llmCfg := llm.DefaultConfig()
	llmCfg.Model = cfg.Model
	llmCfg.MaxAttempts = cfg.MaxAttempts
	llmCfg.RetryDelay = time.Duration(cfg.RetryDelaySeconds) * time.Second

	client, err := llm.NewGeminiClient(ctx, llmCfg, creds.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Step 4: Set up the platform client (v2 with v1.1 fallback)
	poster, err := platform.Setup(ctx, platform.Credentials{
		ConsumerKey:    creds.ConsumerKey,
		ConsumerSecret: creds.ConsumerSecret,
		AccessToken:    creds.AccessToken,
		AccessSecret:   creds.AccessTokenSecret,
		BearerToken:    creds.BearerToken,
	})
	if err != nil {
		return err
	}

	return pipeline.Run(ctx, pipeline.Options{
		Client:         client,
		Poster:         poster,
		CriticalWeight: cfg.CriticalWeight,
		MaxWords:       cfg.MaxWords,
		Verbose:        cfg.Verbose,
	})
}
