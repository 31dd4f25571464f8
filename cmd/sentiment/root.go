package main

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sentiment",
	Short:        "Binary text-sentiment classifier",
	Long:         "Sentiment — train, evaluate and serve a gradient-boosted text-sentiment classifier.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(classifyCmd)
}

// Flag defaults fall back to SENTIMENT_* environment variables, loaded
// from .env when present. Flags set on the command line win.

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// delimiterOf returns the first rune of s, defaulting to tab.
func delimiterOf(s string) rune {
	if s == "" {
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
