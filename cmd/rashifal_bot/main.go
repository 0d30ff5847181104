// Package main provides the entry point for the rashifal posting bot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rashifal_bot",
	Short: "Rashifal posting bot",
	Long:  "Generates one short romanized rashifal (horoscope) for a random zodiac sign and posts it to Twitter/X. Runs once per invocation; scheduling lives outside this binary.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
