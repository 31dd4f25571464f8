// Package calibration maps raw ensemble scores to probabilities with a
// Platt-style sigmoid fit.
package calibration

import (
	"math"

	"github.com/sandeep-multani/SentimentAnalysisML/core/model"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

// maxIterations caps the Newton optimization. The fit is a 1-D logistic
// regression and converges in a handful of steps on typical score ranges.
const maxIterations = 50

// PlattScaler fits probability = sigmoid(Slope*score + Intercept) by
// minimizing logistic loss against Platt-smoothed targets. The fitted
// function is monotonically non-decreasing in the score: the slope is
// clamped to be non-negative. Fields are exported for gob encoding.
type PlattScaler struct {
	State *model.StateManager

	Slope     float64
	Intercept float64
}

var _ model.Calibrator = (*PlattScaler)(nil)

// NewPlattScaler creates an unfitted PlattScaler.
func NewPlattScaler() *PlattScaler {
	return &PlattScaler{State: model.NewStateManager()}
}

// Fit estimates the sigmoid parameters from raw scores and binary labels.
// Targets are smoothed per Platt: positives become (n+ + 1)/(n+ + 2) and
// negatives 1/(n- + 2), which keeps the optimization bounded even on
// perfectly separable scores.
func (p *PlattScaler) Fit(scores []float64, labels []bool) error {
	if len(scores) == 0 {
		return errors.NewTrainingError("PlattScaler.Fit", "no scores to calibrate")
	}
	if len(scores) != len(labels) {
		return errors.NewDimensionError("PlattScaler.Fit", len(scores), len(labels))
	}
	if err := errors.CheckValues("PlattScaler.Fit", scores); err != nil {
		return err
	}

	var numPos, numNeg int
	for _, label := range labels {
		if label {
			numPos++
		} else {
			numNeg++
		}
	}

	targetPos := (float64(numPos) + 1) / (float64(numPos) + 2)
	targetNeg := 1 / (float64(numNeg) + 2)

	targets := make([]float64, len(labels))
	for i, label := range labels {
		if label {
			targets[i] = targetPos
		} else {
			targets[i] = targetNeg
		}
	}

	// Newton iterations on (slope, intercept). The Hessian of the logistic
	// loss is positive semi-definite; a small ridge keeps it invertible.
	const ridge = 1e-9
	slope, intercept := 0.0, 0.0

	for iter := 0; iter < maxIterations; iter++ {
		var g0, g1 float64     // gradient wrt intercept, slope
		var h00, h01, h11 float64 // Hessian entries

		for i, s := range scores {
			pred := sigmoid(slope*s + intercept)
			diff := pred - targets[i]
			w := pred * (1 - pred)

			g0 += diff
			g1 += diff * s
			h00 += w
			h01 += w * s
			h11 += w * s * s
		}

		h00 += ridge
		h11 += ridge

		det := h00*h11 - h01*h01
		if math.Abs(det) < 1e-18 {
			break
		}

		stepIntercept := (h11*g0 - h01*g1) / det
		stepSlope := (h00*g1 - h01*g0) / det

		intercept -= stepIntercept
		slope -= stepSlope

		if math.Abs(stepIntercept) < 1e-10 && math.Abs(stepSlope) < 1e-10 {
			break
		}
	}

	if err := errors.CheckScalar("PlattScaler.Fit", slope); err != nil {
		return err
	}
	if err := errors.CheckScalar("PlattScaler.Fit", intercept); err != nil {
		return err
	}

	// Calibration must never invert the score ordering.
	if slope < 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"calibration_slope", "scores anti-correlated with labels", 0))
		slope = 0
	}

	p.Slope = slope
	p.Intercept = intercept
	p.State.SetDimensions(1, len(scores))
	p.State.SetFitted()

	log.GetLoggerWithName("calibration.platt").Debug("calibrator fitted",
		log.SamplesKey, len(scores),
		"slope", slope,
		"intercept", intercept,
	)
	return nil
}

// Calibrate maps a raw score to a probability in [0, 1].
func (p *PlattScaler) Calibrate(score float64) (float64, error) {
	if err := p.State.RequireFitted("PlattScaler", "Calibrate"); err != nil {
		return 0, err
	}
	return sigmoid(p.Slope*score + p.Intercept), nil
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + errors.StabilizeExp(-x))
}
