package pipeline

import (
	"github.com/sandeep-multani/SentimentAnalysisML/boosting"
	"github.com/sandeep-multani/SentimentAnalysisML/calibration"
	coremodel "github.com/sandeep-multani/SentimentAnalysisML/core/model"
	"github.com/sandeep-multani/SentimentAnalysisML/feature"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

var _ coremodel.Persistable = (*Model)(nil)

// Model is a fully trained sentiment classifier: fitted featurizer, tree
// ensemble and calibrator. It is immutable after Train and safe for
// concurrent Predict calls without synchronization.
//
// The three stages always share one feature width; a Model only ever
// applies its ensemble to vectors produced by its own featurizer.
type Model struct {
	vectorizer *feature.HashingVectorizer
	ensemble   *boosting.Ensemble
	calibrator *calibration.PlattScaler
	meta       Metadata
}

// Metadata returns the model's provenance record.
func (m *Model) Metadata() Metadata {
	return m.meta
}

// NumFeatures returns the hashed feature-vector width.
func (m *Model) NumFeatures() int {
	return m.vectorizer.NumFeatures
}

// Predict classifies a single text. An empty text is valid and is scored
// from the zero feature vector.
func (m *Model) Predict(text string) (Prediction, error) {
	features, err := m.vectorizer.Transform(text)
	if err != nil {
		return Prediction{}, err
	}
	score, err := m.ensemble.Score(features)
	if err != nil {
		return Prediction{}, err
	}
	probability, err := m.calibrator.Calibrate(score)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Label:       probability >= 0.5,
		Score:       score,
		Probability: probability,
	}, nil
}

// PredictBatch classifies texts in order. The batch is fail-fast: the first
// item that cannot be scored aborts the call with an error and no partial
// results. A nil slice is rejected; an empty slice yields an empty result.
func (m *Model) PredictBatch(texts []string) ([]Prediction, error) {
	if texts == nil {
		return nil, errors.NewFeaturizationError("pipeline.Model.PredictBatch", "texts slice is nil")
	}
	predictions := make([]Prediction, len(texts))
	for i, text := range texts {
		p, err := m.Predict(text)
		if err != nil {
			return nil, errors.Wrapf(err, "batch item %d", i)
		}
		predictions[i] = p
	}
	return predictions, nil
}
