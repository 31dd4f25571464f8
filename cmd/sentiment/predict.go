package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeep-multani/SentimentAnalysisML/pipeline"
)

var predictCmd = &cobra.Command{
	Use:   "predict [text]...",
	Short: "Classify one or more texts with a saved model",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPredict,
}

func init() {
	predictCmd.Flags().String("model", envString("SENTIMENT_MODEL", "sentiment.model"), "path to a saved model")
}

type predictionOutput struct {
	Text        string  `json:"text"`
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
	Score       float64 `json:"score"`
}

func sentimentName(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}

func runPredict(cmd *cobra.Command, args []string) error {
	modelPath, _ := cmd.Flags().GetString("model")
	model, err := pipeline.LoadFile(modelPath)
	if err != nil {
		return err
	}

	predictions, err := model.PredictBatch(args)
	if err != nil {
		return err
	}

	output := make([]predictionOutput, len(predictions))
	for i, p := range predictions {
		output[i] = predictionOutput{
			Text:        args[i],
			Label:       sentimentName(p.Label),
			Probability: p.Probability,
			Score:       p.Score,
		}
	}
	out, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
