package boosting

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// makeSeparableData builds a two-feature dataset where class 1 has
// feature 0 above 0.5 and class 0 below.
func makeSeparableData(n int) (*mat.Dense, []bool) {
	X := mat.NewDense(n, 2, nil)
	labels := make([]bool, n)
	half := n / 2

	for i := 0; i < half; i++ {
		X.Set(i, 0, float64(i)/float64(n))
		X.Set(i, 1, float64(i%5)/5.0)
		labels[i] = false
	}
	for i := half; i < n; i++ {
		X.Set(i, 0, 0.5+float64(i-half)/float64(n))
		X.Set(i, 1, float64(i%5)/5.0)
		labels[i] = true
	}
	return X, labels
}

func TestTrainBasic(t *testing.T) {
	X, labels := makeSeparableData(50)

	cfg := Config{
		NumTrees:           5,
		NumLeaves:          4,
		MinExamplesPerLeaf: 5,
		LearningRate:       0.1,
	}

	ensemble, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if len(ensemble.Trees) != 5 {
		t.Errorf("tree count = %d, want 5", len(ensemble.Trees))
	}
	if ensemble.NumFeatures != 2 {
		t.Errorf("NumFeatures = %d, want 2", ensemble.NumFeatures)
	}

	// Scores should separate the classes.
	features := make([]float64, 2)
	correct := 0
	for i := 0; i < 50; i++ {
		mat.Row(features, i, X)
		score, err := ensemble.Score(features)
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if (score > ensemble.InitScore) == labels[i] {
			correct++
		}
	}
	if correct < 45 {
		t.Errorf("separable data: %d/50 correct, want >= 45", correct)
	}
}

func TestTrainDeterministic(t *testing.T) {
	X, labels := makeSeparableData(40)
	cfg := Config{
		NumTrees:           3,
		NumLeaves:          4,
		MinExamplesPerLeaf: 2,
		LearningRate:       0.1,
	}

	first, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("first Train failed: %v", err)
	}
	second, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("second Train failed: %v", err)
	}

	if !reflect.DeepEqual(first.Trees, second.Trees) {
		t.Error("two trainings on identical data produced different ensembles")
	}
	if first.InitScore != second.InitScore {
		t.Errorf("init scores differ: %v vs %v", first.InitScore, second.InitScore)
	}
}

func TestLeafBudget(t *testing.T) {
	X, labels := makeSeparableData(60)
	cfg := Config{
		NumTrees:           3,
		NumLeaves:          3,
		MinExamplesPerLeaf: 1,
		LearningRate:       0.1,
	}

	ensemble, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	for _, tree := range ensemble.Trees {
		if tree.NumLeaves > 3 {
			t.Errorf("tree %d has %d leaves, budget is 3", tree.TreeIndex, tree.NumLeaves)
		}
	}
}

func TestMinExamplesPerLeaf(t *testing.T) {
	X, labels := makeSeparableData(40)
	cfg := Config{
		NumTrees:           2,
		NumLeaves:          16,
		MinExamplesPerLeaf: 8,
		LearningRate:       0.1,
	}

	ensemble, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	for _, tree := range ensemble.Trees {
		for i := range tree.Nodes {
			node := &tree.Nodes[i]
			if node.IsLeaf() && node.LeafCount < 8 {
				t.Errorf("tree %d leaf %d holds %d examples, floor is 8",
					tree.TreeIndex, node.NodeID, node.LeafCount)
			}
		}
	}
}

func TestTrainTinySeparable(t *testing.T) {
	// Two examples differing on feature 0, one tree with two leaves.
	X := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	labels := []bool{true, false}

	cfg := Config{
		NumTrees:           1,
		NumLeaves:          2,
		MinExamplesPerLeaf: 1,
		LearningRate:       0.1,
	}

	ensemble, err := Train(X, labels, cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	posScore, err := ensemble.Score([]float64{1, 0})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	negScore, err := ensemble.Score([]float64{0, 1})
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if posScore <= negScore {
		t.Errorf("positive example score %v should exceed negative %v", posScore, negScore)
	}
}

func TestTrainErrors(t *testing.T) {
	X, labels := makeSeparableData(10)

	tests := []struct {
		name   string
		X      *mat.Dense
		labels []bool
		cfg    Config
	}{
		{
			name:   "nil matrix",
			X:      nil,
			labels: labels,
			cfg:    Config{NumTrees: 1, NumLeaves: 2},
		},
		{
			name:   "zero trees",
			X:      X,
			labels: labels,
			cfg:    Config{NumTrees: 0, NumLeaves: 2},
		},
		{
			name:   "negative trees",
			X:      X,
			labels: labels,
			cfg:    Config{NumTrees: -1, NumLeaves: 2},
		},
		{
			name:   "leaf budget below 2",
			X:      X,
			labels: labels,
			cfg:    Config{NumTrees: 1, NumLeaves: 1},
		},
		{
			name:   "label count mismatch",
			X:      X,
			labels: labels[:5],
			cfg:    Config{NumTrees: 1, NumLeaves: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Train(tt.X, tt.labels, tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			var trainErr *errors.TrainingError
			if !errors.As(err, &trainErr) {
				t.Errorf("expected TrainingError, got %T: %v", err, err)
			}
		})
	}
}

func TestScoreDimensionMismatch(t *testing.T) {
	X, labels := makeSeparableData(20)
	ensemble, err := Train(X, labels, Config{NumTrees: 1, NumLeaves: 2, MinExamplesPerLeaf: 1})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	_, err = ensemble.Score([]float64{1, 2, 3})
	if err == nil {
		t.Fatal("Score with wrong width should fail")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("expected DimensionError, got %T: %v", err, err)
	}
}

func TestScoreBatchOrder(t *testing.T) {
	X, labels := makeSeparableData(20)
	ensemble, err := Train(X, labels, Config{NumTrees: 2, NumLeaves: 4, MinExamplesPerLeaf: 1})
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	scores, err := ensemble.ScoreBatch(X)
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}
	if len(scores) != 20 {
		t.Fatalf("score count = %d, want 20", len(scores))
	}

	features := make([]float64, 2)
	for i := 0; i < 20; i++ {
		mat.Row(features, i, X)
		single, err := ensemble.Score(features)
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if scores[i] != single {
			t.Errorf("row %d: batch score %v != single score %v", i, scores[i], single)
		}
	}
}

func TestLogisticObjective(t *testing.T) {
	obj := NewLogisticObjective()

	if got := obj.Residual(0, 1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Residual(0, 1) = %v, want 0.5", got)
	}
	if got := obj.Residual(0, 0); math.Abs(got+0.5) > 1e-12 {
		t.Errorf("Residual(0, 0) = %v, want -0.5", got)
	}

	// Balanced targets give zero initial log-odds.
	if got := obj.InitScore([]float64{0, 1, 0, 1}); math.Abs(got) > 1e-9 {
		t.Errorf("InitScore(balanced) = %v, want 0", got)
	}

	// Skewed targets give positive log-odds.
	if got := obj.InitScore([]float64{1, 1, 1, 0}); got <= 0 {
		t.Errorf("InitScore(skewed positive) = %v, want > 0", got)
	}
}

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}
	if got := Sigmoid(1000); got != 1 && math.Abs(got-1) > 1e-12 {
		t.Errorf("Sigmoid(1000) = %v, want 1", got)
	}
	if got := Sigmoid(-1000); got > 1e-12 {
		t.Errorf("Sigmoid(-1000) = %v, want ~0", got)
	}
}
