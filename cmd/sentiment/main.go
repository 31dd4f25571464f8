// Command sentiment trains, evaluates and serves the binary text-sentiment
// classifier from the command line.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

func main() {
	// .env is optional; flags still override anything it sets.
	_ = godotenv.Load()
	log.SetupLogger(envString("SENTIMENT_LOG_LEVEL", "info"))

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
