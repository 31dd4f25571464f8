package pipeline

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/metrics"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

// Metrics is a snapshot of classifier quality on a labeled test set.
// Accuracy, F1, Precision and Recall are computed at the 0.5 probability
// threshold; AUC is rank-based over the raw scores.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	AUC       float64 `json:"auc"`
	F1        float64 `json:"f1"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

// Evaluate scores the model on the given labeled examples. Neither the
// model nor the examples are mutated.
func Evaluate(model *Model, examples []Example) (Metrics, error) {
	logger := log.GetLoggerWithName("pipeline")
	start := time.Now()

	if len(examples) == 0 {
		return Metrics{}, errors.NewValueError("pipeline.Evaluate", "no evaluation examples")
	}

	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}
	predictions, err := model.PredictBatch(texts)
	if err != nil {
		return Metrics{}, err
	}

	yTrue := mat.NewVecDense(len(examples), nil)
	yPred := mat.NewVecDense(len(examples), nil)
	yScore := mat.NewVecDense(len(examples), nil)
	for i, ex := range examples {
		if ex.Label {
			yTrue.SetVec(i, 1)
		}
		if predictions[i].Label {
			yPred.SetVec(i, 1)
		}
		yScore.SetVec(i, predictions[i].Score)
	}

	var m Metrics
	if m.Accuracy, err = metrics.Accuracy(yTrue, yPred); err != nil {
		return Metrics{}, err
	}
	if m.AUC, err = metrics.AUC(yTrue, yScore); err != nil {
		return Metrics{}, err
	}
	if m.Precision, err = metrics.Precision(yTrue, yPred); err != nil {
		return Metrics{}, err
	}
	if m.Recall, err = metrics.Recall(yTrue, yPred); err != nil {
		return Metrics{}, err
	}
	if m.F1, err = metrics.F1Score(yTrue, yPred); err != nil {
		return Metrics{}, err
	}

	logger.Info("evaluation complete",
		log.ModelIDKey, model.meta.ID,
		log.OperationKey, log.OperationEvaluate,
		log.SamplesKey, len(examples),
		log.AccuracyKey, m.Accuracy,
		log.AUCKey, m.AUC,
		log.F1Key, m.F1,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return m, nil
}
