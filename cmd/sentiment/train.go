package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeep-multani/SentimentAnalysisML/boosting"
	"github.com/sandeep-multani/SentimentAnalysisML/dataset"
	"github.com/sandeep-multani/SentimentAnalysisML/feature"
	"github.com/sandeep-multani/SentimentAnalysisML/pipeline"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a sentiment model from a labeled dataset",
	Long: "Train reads delimited text/label examples, holds out a test split, " +
		"fits the model and writes it to disk.",
	RunE: runTrain,
}

func init() {
	defaults := boosting.DefaultConfig()

	f := trainCmd.Flags()
	f.String("data", envString("SENTIMENT_DATA", ""), "path to delimited text/label examples")
	f.String("delimiter", envString("SENTIMENT_DELIMITER", "\t"), "column delimiter")
	f.String("model", envString("SENTIMENT_MODEL", "sentiment.model"), "output model path")
	f.Int("num-features", envInt("SENTIMENT_NUM_FEATURES", feature.DefaultNumFeatures), "hashed feature width")
	f.Bool("idf", envBool("SENTIMENT_IDF", true), "weight hashed counts by inverse document frequency")
	f.Int("trees", envInt("SENTIMENT_TREES", defaults.NumTrees), "number of boosting rounds")
	f.Int("leaves", envInt("SENTIMENT_LEAVES", defaults.NumLeaves), "maximum leaves per tree")
	f.Int("min-examples", envInt("SENTIMENT_MIN_EXAMPLES", defaults.MinExamplesPerLeaf), "minimum examples per leaf")
	f.Float64("learning-rate", envFloat("SENTIMENT_LEARNING_RATE", defaults.LearningRate), "shrinkage per tree")
	f.Float64("test-fraction", envFloat("SENTIMENT_TEST_FRACTION", 0.2), "held-out fraction for evaluation")
	f.Uint64("seed", 42, "content-stable split seed")
	_ = trainCmd.MarkFlagRequired("data")
}

func runTrain(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	dataPath, _ := flags.GetString("data")
	delimiter, _ := flags.GetString("delimiter")
	modelPath, _ := flags.GetString("model")
	testFraction, _ := flags.GetFloat64("test-fraction")
	seed, _ := flags.GetUint64("seed")

	cfg := pipeline.TrainConfig{}
	cfg.NumFeatures, _ = flags.GetInt("num-features")
	cfg.UseIDF, _ = flags.GetBool("idf")
	cfg.Boosting.NumTrees, _ = flags.GetInt("trees")
	cfg.Boosting.NumLeaves, _ = flags.GetInt("leaves")
	cfg.Boosting.MinExamplesPerLeaf, _ = flags.GetInt("min-examples")
	cfg.Boosting.LearningRate, _ = flags.GetFloat64("learning-rate")

	examples, err := dataset.LoadFile(dataPath, dataset.LoadOptions{Delimiter: delimiterOf(delimiter)})
	if err != nil {
		return err
	}

	train, test, err := dataset.Split(examples, testFraction, seed)
	if err != nil {
		return err
	}

	model, err := pipeline.Train(train, cfg)
	if err != nil {
		return err
	}
	if err := model.SaveFile(modelPath); err != nil {
		return err
	}

	fmt.Printf("trained model %s on %d examples, saved to %s\n",
		model.Metadata().ID, len(train), modelPath)

	if len(test) > 0 {
		metrics, err := pipeline.Evaluate(model, test)
		if err != nil {
			return err
		}
		fmt.Printf("held-out (%d examples): accuracy=%.4f auc=%.4f f1=%.4f\n",
			len(test), metrics.Accuracy, metrics.AUC, metrics.F1)
	}
	return nil
}
