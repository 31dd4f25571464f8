// Package pipeline composes the fitted stages of the sentiment classifier
// into a single Model: hashing featurizer, gradient-boosted tree ensemble,
// and Platt probability calibrator, applied left to right.
//
// Train builds all three stages in one shot and returns either a complete
// Model or an error with no partial state. A trained Model is immutable and
// safe for concurrent Predict calls.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/sandeep-multani/SentimentAnalysisML/boosting"
	"github.com/sandeep-multani/SentimentAnalysisML/calibration"
	"github.com/sandeep-multani/SentimentAnalysisML/feature"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

// Example is a single labeled training or evaluation instance.
type Example struct {
	// Text is the raw input text. Empty strings are valid and featurize
	// to the zero vector.
	Text string

	// Label is true for positive sentiment.
	Label bool
}

// Prediction is the output of the classifier for one text.
// Label always equals (Probability >= 0.5).
type Prediction struct {
	// Label is the hard classification decision.
	Label bool

	// Score is the raw, uncalibrated ensemble margin.
	Score float64

	// Probability is the calibrated estimate of P(positive) in [0, 1].
	Probability float64
}

// TrainConfig bundles the hyperparameters for all pipeline stages.
type TrainConfig struct {
	// NumFeatures is the hashed feature-vector width. Zero selects
	// feature.DefaultNumFeatures.
	NumFeatures int `json:"num_features"`

	// UseIDF enables inverse-document-frequency weighting of hashed
	// term counts.
	UseIDF bool `json:"use_idf"`

	// Boosting configures the tree ensemble trainer.
	Boosting boosting.Config `json:"boosting"`
}

// DefaultTrainConfig returns the default hyperparameters.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		NumFeatures: feature.DefaultNumFeatures,
		UseIDF:      true,
		Boosting:    boosting.DefaultConfig(),
	}
}

// Metadata records provenance for a trained model. It has no effect on
// predictions.
type Metadata struct {
	// ID is a UUID assigned when training completes.
	ID string

	// CreatedAt is the UTC completion time of training.
	CreatedAt time.Time

	// Config is the configuration the model was trained with.
	Config TrainConfig
}

// Train fits the featurizer, the boosted ensemble and the calibrator on the
// given examples and returns the composed model. Training is deterministic:
// the same examples and config always produce byte-identical models.
func Train(examples []Example, cfg TrainConfig) (*Model, error) {
	logger := log.GetLoggerWithName("pipeline")
	start := time.Now()

	if len(examples) == 0 {
		return nil, errors.NewTrainingError("pipeline.Train", "no training examples")
	}

	texts := make([]string, len(examples))
	labels := make([]bool, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
		labels[i] = ex.Label
	}

	vectorizer := feature.NewHashingVectorizer(cfg.NumFeatures, cfg.UseIDF)
	X, err := vectorizer.FitTransform(texts)
	if err != nil {
		return nil, err
	}

	ensemble, err := boosting.Train(X, labels, cfg.Boosting)
	if err != nil {
		return nil, err
	}

	// Calibrate on the raw training-set margins.
	scores, err := ensemble.ScoreBatch(X)
	if err != nil {
		return nil, err
	}
	calibrator := calibration.NewPlattScaler()
	if err := calibrator.Fit(scores, labels); err != nil {
		return nil, err
	}

	model := &Model{
		vectorizer: vectorizer,
		ensemble:   ensemble,
		calibrator: calibrator,
		meta: Metadata{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Config:    cfg,
		},
	}

	logger.Info("training complete",
		log.ModelIDKey, model.meta.ID,
		log.OperationKey, log.OperationFit,
		log.SamplesKey, len(examples),
		log.FeaturesKey, vectorizer.NumFeatures,
		log.TreesKey, len(ensemble.Trees),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return model, nil
}
