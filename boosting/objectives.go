package boosting

import (
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// ObjectiveFunction defines the loss interface the trainer boosts against.
type ObjectiveFunction interface {
	// Residual returns the pseudo-residual for one example at the current
	// raw score.
	Residual(score, target float64) float64

	// Loss returns the per-example loss at the current raw score.
	Loss(score, target float64) float64

	// InitScore returns the constant initial raw score for the targets.
	InitScore(targets []float64) float64

	// Name returns the name of the objective.
	Name() string
}

// Sigmoid is the logistic function with overflow protection.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + errors.StabilizeExp(-x))
}

// LogisticObjective implements binary logistic loss. Targets are 0 or 1;
// the raw score is a log-odds value.
type LogisticObjective struct{}

// NewLogisticObjective creates a new LogisticObjective.
func NewLogisticObjective() *LogisticObjective {
	return &LogisticObjective{}
}

// Residual returns target - sigmoid(score), the negative gradient of the
// logistic loss with respect to the raw score.
func (o *LogisticObjective) Residual(score, target float64) float64 {
	return target - Sigmoid(score)
}

// Loss returns the cross-entropy loss for one example.
func (o *LogisticObjective) Loss(score, target float64) float64 {
	p := Sigmoid(score)
	return -(target*errors.StabilizeLog(p) + (1-target)*errors.StabilizeLog(1-p))
}

// InitScore returns the log-odds of the positive base rate, clamped away
// from the degenerate all-positive and all-negative cases.
func (o *LogisticObjective) InitScore(targets []float64) float64 {
	if len(targets) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, t := range targets {
		sum += t
	}
	rate := sum / float64(len(targets))
	rate = errors.ClipValue(rate, 1e-6, 1-1e-6)
	return errors.StabilizeLog(rate) - errors.StabilizeLog(1-rate)
}

// Name returns the name of the objective.
func (o *LogisticObjective) Name() string {
	return "binary"
}
