package boosting

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

// Config contains the training hyperparameters.
type Config struct {
	// NumTrees is the number of boosting rounds.
	NumTrees int `json:"num_trees"`

	// NumLeaves is the maximum number of leaves per tree.
	NumLeaves int `json:"num_leaves"`

	// MinExamplesPerLeaf rejects splits that would produce a child with
	// fewer examples than this floor.
	MinExamplesPerLeaf int `json:"min_examples_per_leaf"`

	// LearningRate scales each tree's leaf outputs.
	LearningRate float64 `json:"learning_rate"`
}

// DefaultConfig returns the default training configuration.
func DefaultConfig() Config {
	return Config{
		NumTrees:           100,
		NumLeaves:          20,
		MinExamplesPerLeaf: 10,
		LearningRate:       0.1,
	}
}

// splitInfo describes the best admissible split found for a leaf.
type splitInfo struct {
	feature   int
	threshold float64
	gain      float64 // variance reduction
	ok        bool
}

// better reports whether s should be preferred over other: larger variance
// reduction first, exact ties broken by lower feature index, then lower
// threshold. This ordering makes tree growth fully deterministic.
func (s splitInfo) better(other splitInfo) bool {
	if s.gain != other.gain {
		return s.gain > other.gain
	}
	if s.feature != other.feature {
		return s.feature < other.feature
	}
	return s.threshold < other.threshold
}

// leafCandidate is a grown leaf that may still be split.
type leafCandidate struct {
	nodeIdx int
	indices []int
	split   splitInfo
}

// Trainer grows a gradient-boosted ensemble of regression trees. Training
// is deterministic: no subsampling, and all iteration orders are stable.
type Trainer struct {
	cfg Config

	X       *mat.Dense
	targets []float64

	scores    []float64
	residuals []float64

	// activeFeatures are columns with at least two distinct values; other
	// columns can never yield a split and are skipped during search.
	activeFeatures []int

	trees     []Tree
	objective ObjectiveFunction
	initScore float64
}

// NewTrainer creates a trainer with the given configuration.
func NewTrainer(cfg Config) *Trainer {
	return &Trainer{
		cfg:       cfg,
		objective: NewLogisticObjective(),
	}
}

// Train fits an ensemble to featurized examples and binary labels.
func Train(X *mat.Dense, labels []bool, cfg Config) (*Ensemble, error) {
	trainer := NewTrainer(cfg)
	if err := trainer.Fit(X, labels); err != nil {
		return nil, err
	}
	return trainer.Ensemble(), nil
}

// Fit runs the boosting loop: per round it computes logistic
// pseudo-residuals, grows one tree best-first against them, and folds the
// tree's scaled outputs into the running scores.
func (t *Trainer) Fit(X *mat.Dense, labels []bool) (err error) {
	defer errors.Recover(&err, "boosting.Trainer.Fit")

	if err := t.validate(X, labels); err != nil {
		return err
	}

	rows, cols := X.Dims()
	t.X = X
	t.targets = make([]float64, rows)
	for i, label := range labels {
		if label {
			t.targets[i] = 1
		}
	}

	t.initialize(rows, cols)

	logger := log.GetLoggerWithName("boosting.trainer")
	logger.Info("training started",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
		log.TreesKey, t.cfg.NumTrees,
		log.LearningRateKey, t.cfg.LearningRate,
	)

	for round := 0; round < t.cfg.NumTrees; round++ {
		for i := range t.residuals {
			t.residuals[i] = t.objective.Residual(t.scores[i], t.targets[i])
		}

		tree := t.buildTree(round)
		t.trees = append(t.trees, tree)

		if err := errors.CheckValues("boosting.Trainer.Fit", t.scores); err != nil {
			return err
		}

		if round%10 == 0 {
			logger.Debug("training progress",
				log.IterationKey, round,
				log.LossKey, t.currentLoss(),
			)
		}
	}

	logger.Info("training finished",
		log.TreesKey, len(t.trees),
		log.LossKey, t.currentLoss(),
	)
	return nil
}

// validate checks the configuration and data before training. Training
// either fully succeeds or fails here with no partial state.
func (t *Trainer) validate(X *mat.Dense, labels []bool) error {
	if t.cfg.NumTrees <= 0 {
		return errors.NewTrainingError("boosting.Trainer.Fit", "num_trees must be positive")
	}
	if t.cfg.NumLeaves < 2 {
		return errors.NewTrainingError("boosting.Trainer.Fit", "num_leaves must be at least 2")
	}
	if t.cfg.MinExamplesPerLeaf == 0 {
		t.cfg.MinExamplesPerLeaf = 1
	}
	if t.cfg.MinExamplesPerLeaf < 0 {
		return errors.NewTrainingError("boosting.Trainer.Fit", "min_examples_per_leaf must be positive")
	}
	if t.cfg.LearningRate == 0 {
		t.cfg.LearningRate = 0.1
	}
	if t.cfg.LearningRate < 0 {
		return errors.NewTrainingError("boosting.Trainer.Fit", "learning_rate must be positive")
	}

	if X == nil {
		return errors.NewTrainingError("boosting.Trainer.Fit", "no training examples")
	}
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errors.NewTrainingError("boosting.Trainer.Fit", "no training examples")
	}
	if len(labels) != rows {
		return errors.NewTrainingError("boosting.Trainer.Fit",
			fmt.Sprintf("label count %d does not match sample count %d", len(labels), rows))
	}
	return nil
}

// initialize prepares the per-example state and the active feature set.
func (t *Trainer) initialize(rows, cols int) {
	t.initScore = t.objective.InitScore(t.targets)
	t.scores = make([]float64, rows)
	for i := range t.scores {
		t.scores[i] = t.initScore
	}
	t.residuals = make([]float64, rows)

	t.activeFeatures = t.activeFeatures[:0]
	for j := 0; j < cols; j++ {
		first := t.X.At(0, j)
		for i := 1; i < rows; i++ {
			if t.X.At(i, j) != first {
				t.activeFeatures = append(t.activeFeatures, j)
				break
			}
		}
	}
}

// buildTree grows one regression tree on the current residuals. Growth is
// best-first: the leaf with the largest admissible variance reduction is
// split next, until the leaf budget is exhausted or no admissible split
// remains.
func (t *Trainer) buildTree(round int) Tree {
	tree := Tree{
		TreeIndex:     round,
		ShrinkageRate: t.cfg.LearningRate,
	}

	rows, _ := t.X.Dims()
	rootIndices := make([]int, rows)
	for i := range rootIndices {
		rootIndices[i] = i
	}

	tree.Nodes = append(tree.Nodes, Node{
		NodeID:     0,
		ParentID:   -1,
		LeftChild:  -1,
		RightChild: -1,
		NodeType:   LeafNode,
		LeafValue:  t.meanResidual(rootIndices),
		LeafCount:  rows,
	})

	candidates := []*leafCandidate{
		{nodeIdx: 0, indices: rootIndices, split: t.findBestSplit(rootIndices)},
	}

	numLeaves := 1
	for numLeaves < t.cfg.NumLeaves {
		bestIdx := -1
		for ci, c := range candidates {
			if !c.split.ok {
				continue
			}
			if bestIdx == -1 || c.split.better(candidates[bestIdx].split) {
				bestIdx = ci
			}
		}
		if bestIdx == -1 {
			break
		}

		chosen := candidates[bestIdx]
		left, right := t.partition(chosen.indices, chosen.split.feature, chosen.split.threshold)

		leftID := len(tree.Nodes)
		rightID := leftID + 1

		node := &tree.Nodes[chosen.nodeIdx]
		node.NodeType = NumericalNode
		node.SplitFeature = chosen.split.feature
		node.Threshold = chosen.split.threshold
		node.Gain = chosen.split.gain
		node.LeftChild = leftID
		node.RightChild = rightID

		tree.Nodes = append(tree.Nodes, Node{
			NodeID:     leftID,
			ParentID:   chosen.nodeIdx,
			LeftChild:  -1,
			RightChild: -1,
			NodeType:   LeafNode,
			LeafValue:  t.meanResidual(left),
			LeafCount:  len(left),
		})
		tree.Nodes = append(tree.Nodes, Node{
			NodeID:     rightID,
			ParentID:   chosen.nodeIdx,
			LeftChild:  -1,
			RightChild: -1,
			NodeType:   LeafNode,
			LeafValue:  t.meanResidual(right),
			LeafCount:  len(right),
		})

		candidates[bestIdx] = &leafCandidate{nodeIdx: leftID, indices: left, split: t.findBestSplit(left)}
		candidates = append(candidates, &leafCandidate{nodeIdx: rightID, indices: right, split: t.findBestSplit(right)})
		numLeaves++
	}

	tree.NumLeaves = tree.countLeaves()

	// Fold the new tree's scaled leaf outputs into the running scores. The
	// surviving candidates partition the full training set.
	for _, c := range candidates {
		value := tree.Nodes[c.nodeIdx].LeafValue * t.cfg.LearningRate
		for _, idx := range c.indices {
			t.scores[idx] += value
		}
	}

	return tree
}

// findBestSplit searches every active feature for the threshold maximizing
// variance reduction over the leaf's residuals, subject to the
// min-examples-per-leaf floor. Features are scanned in ascending index
// order and thresholds in ascending value order, so an exact gain tie is
// resolved toward the lexicographically smallest (feature, threshold).
func (t *Trainer) findBestSplit(indices []int) splitInfo {
	best := splitInfo{}
	if len(indices) < 2*t.cfg.MinExamplesPerLeaf {
		return best
	}

	totalSum := 0.0
	for _, idx := range indices {
		totalSum += t.residuals[idx]
	}
	total := float64(len(indices))

	values := make([]struct {
		value    float64
		residual float64
	}, len(indices))

	for _, feature := range t.activeFeatures {
		for i, idx := range indices {
			values[i].value = t.X.At(idx, feature)
			values[i].residual = t.residuals[idx]
		}
		sort.Slice(values, func(a, b int) bool {
			return values[a].value < values[b].value
		})

		leftSum := 0.0
		for i := 0; i < len(values)-1; i++ {
			leftSum += values[i].residual
			if values[i].value == values[i+1].value {
				continue
			}

			leftCount := i + 1
			rightCount := len(values) - leftCount
			if leftCount < t.cfg.MinExamplesPerLeaf || rightCount < t.cfg.MinExamplesPerLeaf {
				continue
			}

			rightSum := totalSum - leftSum
			gain := leftSum*leftSum/float64(leftCount) +
				rightSum*rightSum/float64(rightCount) -
				totalSum*totalSum/total
			if gain <= 0 {
				continue
			}

			candidate := splitInfo{
				feature:   feature,
				threshold: (values[i].value + values[i+1].value) / 2,
				gain:      gain,
				ok:        true,
			}
			if !best.ok || candidate.better(best) {
				best = candidate
			}
		}
	}
	return best
}

// partition splits indices by a threshold on one feature. Values equal to
// the threshold route left, matching Tree.Predict.
func (t *Trainer) partition(indices []int, feature int, threshold float64) ([]int, []int) {
	var left, right []int
	for _, idx := range indices {
		if t.X.At(idx, feature) <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	return left, right
}

// meanResidual returns the mean residual over the given examples, the leaf
// output for a regression tree fitted to residuals.
func (t *Trainer) meanResidual(indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	sum := 0.0
	for _, idx := range indices {
		sum += t.residuals[idx]
	}
	return sum / float64(len(indices))
}

// currentLoss returns the mean objective loss at the current scores.
func (t *Trainer) currentLoss() float64 {
	loss := 0.0
	for i := range t.scores {
		loss += t.objective.Loss(t.scores[i], t.targets[i])
	}
	return loss / float64(len(t.scores))
}

// Ensemble returns the trained ensemble.
func (t *Trainer) Ensemble() *Ensemble {
	_, cols := t.X.Dims()
	return &Ensemble{
		NumTrees:           len(t.trees),
		NumLeaves:          t.cfg.NumLeaves,
		MinExamplesPerLeaf: t.cfg.MinExamplesPerLeaf,
		LearningRate:       t.cfg.LearningRate,
		NumFeatures:        cols,
		InitScore:          t.initScore,
		Trees:              t.trees,
	}
}

// GetParams returns the trainer's hyperparameters.
func (t *Trainer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"num_trees":             t.cfg.NumTrees,
		"num_leaves":            t.cfg.NumLeaves,
		"min_examples_per_leaf": t.cfg.MinExamplesPerLeaf,
		"learning_rate":         t.cfg.LearningRate,
	}
}
