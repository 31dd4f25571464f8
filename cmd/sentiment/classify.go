package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeep-multani/SentimentAnalysisML/pipeline"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Interactively classify lines read from stdin",
	Long: "Classify reads one text per line from stdin and prints the predicted " +
		"sentiment and probability until EOF.",
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("model", envString("SENTIMENT_MODEL", "sentiment.model"), "path to a saved model")
}

func runClassify(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	model, err := pipeline.LoadFile(modelPath)
	if err != nil {
		return err
	}

	fmt.Println("enter one text per line (ctrl-d to quit):")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		p, err := model.Predict(text)
		if err != nil {
			return err
		}
		fmt.Printf("%s (p=%.3f)\n", sentimentName(p.Label), p.Probability)
	}
	return scanner.Err()
}
