// Package sentimentml implements a binary text-sentiment classification
// pipeline: a hashing text vectorizer, a gradient-boosted tree ensemble
// trained against logistic loss, Platt sigmoid calibration, evaluation
// metrics, and a serializable composed model.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/sandeep-multani/SentimentAnalysisML/pipeline"
//	)
//
//	func main() {
//	    examples := []pipeline.Example{
//	        {Text: "great food", Label: true},
//	        {Text: "terrible service", Label: false},
//	    }
//
//	    model, err := pipeline.Train(examples, pipeline.DefaultTrainConfig())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict("great food")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("label=%v probability=%.3f\n", pred.Label, pred.Probability)
//	}
//
// # Packages
//
//   - feature: hashing text vectorizer with optional IDF weighting
//   - boosting: gradient-boosted regression tree trainer and ensemble
//   - calibration: Platt sigmoid score calibration
//   - metrics: classification metrics (accuracy, precision, recall, F1, AUC)
//   - pipeline: composed model, training, evaluation, persistence
//   - dataset: delimited-file loading and seeded train/test splitting
//   - core/model: estimator interfaces and base types
//   - pkg/errors, pkg/log: structured errors and logging
//
// Training is a one-shot batch operation. A trained model is immutable and
// safe for concurrent prediction from multiple goroutines.
package sentimentml
