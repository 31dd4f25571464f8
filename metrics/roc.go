package metrics

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// ROCPoint is one operating point on the ROC curve.
type ROCPoint struct {
	FPR       float64 // false positive rate
	TPR       float64 // true positive rate
	Threshold float64 // score threshold producing this point
}

// ROCCurve computes the ROC curve points from binary labels and raw
// scores, ordered from the most permissive threshold to the strictest.
// The curve starts at (0, 0) and ends at (1, 1).
func ROCCurve(yTrue, yScore *mat.VecDense) ([]ROCPoint, error) {
	n := yTrue.Len()
	if n == 0 {
		return nil, errors.NewValueError("ROCCurve", "empty vector")
	}
	if yScore.Len() != n {
		return nil, errors.NewDimensionError("ROCCurve", n, yScore.Len())
	}

	var numPos, numNeg int
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			numPos++
		case 0:
			numNeg++
		default:
			return nil, errors.NewValueError("ROCCurve", "labels must be binary (0 or 1)")
		}
	}
	if numPos == 0 || numNeg == 0 {
		return nil, errors.NewValueError("ROCCurve", "both classes must be present")
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return yScore.AtVec(order[a]) > yScore.AtVec(order[b])
	})

	points := []ROCPoint{{FPR: 0, TPR: 0, Threshold: yScore.AtVec(order[0])}}
	var tp, fp int
	for i := 0; i < n; {
		threshold := yScore.AtVec(order[i])
		// Consume the whole tied-score group before emitting a point.
		for i < n && yScore.AtVec(order[i]) == threshold {
			if yTrue.AtVec(order[i]) == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, ROCPoint{
			FPR:       float64(fp) / float64(numNeg),
			TPR:       float64(tp) / float64(numPos),
			Threshold: threshold,
		})
	}
	return points, nil
}
