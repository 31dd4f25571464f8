// Package metrics provides binary classification metrics.
package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// Accuracy computes the fraction of correctly predicted labels. Both
// vectors hold 0/1 values.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len())
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// Precision computes TP / (TP + FP). When no positives are predicted the
// metric is ill-defined; 0 is returned and a warning raised.
func Precision(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Precision", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Precision", n, yPred.Len())
	}

	var tp, fp int
	for i := 0; i < n; i++ {
		if yPred.AtVec(i) == 1 {
			if yTrue.AtVec(i) == 1 {
				tp++
			} else {
				fp++
			}
		}
	}
	if tp+fp == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision", "no predicted positives", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fp), nil
}

// Recall computes TP / (TP + FN). When there are no true positives the
// metric is ill-defined; 0 is returned and a warning raised.
func Recall(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Recall", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Recall", n, yPred.Len())
	}

	var tp, fn int
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			if yPred.AtVec(i) == 1 {
				tp++
			} else {
				fn++
			}
		}
	}
	if tp+fn == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall", "no positive labels", 0))
		return 0, nil
	}
	return float64(tp) / float64(tp+fn), nil
}

// F1Score computes the harmonic mean of precision and recall. When both
// are zero the score is 0.
func F1Score(yTrue, yPred *mat.VecDense) (float64, error) {
	precision, err := Precision(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	recall, err := Recall(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	if precision+recall == 0 {
		return 0, nil
	}
	return 2 * precision * recall / (precision + recall), nil
}

// AUC computes the area under the ROC curve from binary labels and raw
// scores. It is the probability that a uniformly random positive example
// scores higher than a uniformly random negative one; tied scores
// contribute 0.5. With only one class present the metric is ill-defined
// and 0.5 is returned with a warning.
func AUC(yTrue, yScore *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty vector")
	}
	if yScore.Len() != n {
		return 0, errors.NewDimensionError("AUC", n, yScore.Len())
	}

	var numPos, numNeg int
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			numPos++
		case 0:
			numNeg++
		default:
			return 0, errors.NewValueError("AUC", "labels must be binary (0 or 1)")
		}
	}
	if numPos == 0 || numNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("auc", "only one class present", 0.5))
		return 0.5, nil
	}

	// Average-rank formulation: tied score groups share the mean of the
	// ranks they span, which yields the 0.5 contribution per tie.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return yScore.AtVec(order[a]) < yScore.AtVec(order[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && yScore.AtVec(order[j]) == yScore.AtVec(order[i]) {
			j++
		}
		// Ranks are 1-based; the tied group [i, j) shares the average.
		avgRank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[order[k]] = avgRank
		}
		i = j
	}

	var rankSumPos float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			rankSumPos += ranks[i]
		}
	}

	auc := (rankSumPos - float64(numPos)*float64(numPos+1)/2) /
		(float64(numPos) * float64(numNeg))
	return auc, nil
}
