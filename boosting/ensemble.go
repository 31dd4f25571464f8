package boosting

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/core/model"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

var (
	_ model.Scorer          = (*Ensemble)(nil)
	_ model.ParameterGetter = (*Trainer)(nil)
)

// Ensemble is a trained additive ensemble of regression trees. It is
// immutable after training and safe for concurrent scoring.
type Ensemble struct {
	// Configuration recorded at training time
	NumTrees           int
	NumLeaves          int
	MinExamplesPerLeaf int
	LearningRate       float64

	// Feature information
	NumFeatures int

	// InitScore is the constant baseline raw score (log-odds of the
	// positive base rate).
	InitScore float64

	// Trees are applied in order; outputs are summed.
	Trees []Tree
}

// Score returns the raw ensemble score for one feature vector: the init
// score plus the sum of all trees' scaled leaf outputs.
func (e *Ensemble) Score(features []float64) (float64, error) {
	if len(features) != e.NumFeatures {
		return 0, errors.NewDimensionError("Ensemble.Score", e.NumFeatures, len(features))
	}

	score := e.InitScore
	for i := range e.Trees {
		score += e.Trees[i].Predict(features)
	}
	return score, nil
}

// ScoreBatch returns raw scores for every row of X, in row order.
func (e *Ensemble) ScoreBatch(X mat.Matrix) ([]float64, error) {
	rows, cols := X.Dims()
	if cols != e.NumFeatures {
		return nil, errors.NewDimensionError("Ensemble.ScoreBatch", e.NumFeatures, cols)
	}

	scores := make([]float64, rows)
	features := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(features, i, X)
		score, err := e.Score(features)
		if err != nil {
			return nil, err
		}
		scores[i] = score
	}
	return scores, nil
}

// FeatureImportance returns per-feature importance normalized to sum to 1.
// importanceType is "split" (number of times a feature is used) or "gain"
// (total variance reduction contributed).
func (e *Ensemble) FeatureImportance(importanceType string) []float64 {
	importance := make([]float64, e.NumFeatures)

	for _, tree := range e.Trees {
		for i := range tree.Nodes {
			node := &tree.Nodes[i]
			if node.IsLeaf() {
				continue
			}
			switch importanceType {
			case "gain":
				importance[node.SplitFeature] += node.Gain
			default:
				importance[node.SplitFeature]++
			}
		}
	}

	total := 0.0
	for _, v := range importance {
		total += v
	}
	if total > 0 {
		for i := range importance {
			importance[i] /= total
		}
	}
	return importance
}
