package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeep-multani/SentimentAnalysisML/dataset"
	"github.com/sandeep-multani/SentimentAnalysisML/pipeline"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a saved model on a labeled dataset",
	RunE:  runEvaluate,
}

func init() {
	f := evaluateCmd.Flags()
	f.String("model", envString("SENTIMENT_MODEL", "sentiment.model"), "path to a saved model")
	f.String("data", envString("SENTIMENT_DATA", ""), "path to delimited text/label examples")
	f.String("delimiter", envString("SENTIMENT_DELIMITER", "\t"), "column delimiter")
	f.String("roc", "", "write a ROC curve plot to this file (png/svg/pdf)")
	_ = evaluateCmd.MarkFlagRequired("data")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	modelPath, _ := flags.GetString("model")
	dataPath, _ := flags.GetString("data")
	delimiter, _ := flags.GetString("delimiter")
	rocPath, _ := flags.GetString("roc")

	model, err := pipeline.LoadFile(modelPath)
	if err != nil {
		return err
	}
	examples, err := dataset.LoadFile(dataPath, dataset.LoadOptions{Delimiter: delimiterOf(delimiter)})
	if err != nil {
		return err
	}

	metrics, err := pipeline.Evaluate(model, examples)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if rocPath != "" {
		if err := pipeline.SaveROCPlot(model, examples, rocPath); err != nil {
			return err
		}
		fmt.Printf("ROC curve written to %s\n", rocPath)
	}
	return nil
}
