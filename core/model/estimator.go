package model

import "gonum.org/v1/gonum/mat"

// Scorer is the interface for fitted models that produce a raw margin
// from a feature vector.
type Scorer interface {
	// Score returns the raw, uncalibrated margin for one feature vector.
	Score(features []float64) (float64, error)

	// ScoreBatch scores each row of X in input order.
	ScoreBatch(X mat.Matrix) ([]float64, error)
}

// Calibrator maps raw margins to probability estimates.
type Calibrator interface {
	// Fit estimates the calibration map from scores and matching labels.
	Fit(scores []float64, labels []bool) error

	// Calibrate returns the calibrated probability for a raw score.
	Calibrate(score float64) (float64, error)
}
