// Package boosting implements gradient-boosted regression trees for binary
// classification. Trees are grown best-first under a leaf budget and fitted
// to logistic-loss pseudo-residuals.
package boosting

// NodeType represents the type of a tree node
type NodeType int

const (
	// LeafNode is a terminal node carrying an output value
	LeafNode NodeType = iota
	// NumericalNode is an internal node with a numerical threshold split
	NumericalNode
)

// Node is a single node in a decision tree. Trees are stored as a flat
// arena of nodes with integer child indices, which keeps the structure
// cycle-free and trivially serializable.
type Node struct {
	// Node identification
	NodeID     int // Index of the node in the tree's arena
	ParentID   int // Parent node index (-1 for root)
	LeftChild  int // Left child index (-1 if leaf)
	RightChild int // Right child index (-1 if leaf)
	NodeType   NodeType

	// Split information (for internal nodes)
	SplitFeature int     // Feature index used for splitting
	Threshold    float64 // Values <= Threshold route left
	Gain         float64 // Variance reduction achieved by the split

	// Leaf information (for leaf nodes)
	LeafValue float64 // Mean residual of the examples routed here
	LeafCount int     // Number of training examples routed here
}

// IsLeaf returns true if the node is a leaf node
func (n *Node) IsLeaf() bool {
	return n.LeftChild == -1 && n.RightChild == -1
}

// Tree is a single regression tree in the ensemble.
type Tree struct {
	TreeIndex     int     // Index of the tree in the ensemble
	NumLeaves     int     // Number of leaf nodes
	ShrinkageRate float64 // Learning rate applied to this tree's outputs

	Nodes []Node // Flat node arena; Nodes[0] is the root
}

// Predict routes a feature vector to a leaf and returns the
// learning-rate-scaled leaf output.
func (t *Tree) Predict(features []float64) float64 {
	nodeID := 0
	for nodeID >= 0 && nodeID < len(t.Nodes) {
		node := &t.Nodes[nodeID]

		if node.IsLeaf() {
			return node.LeafValue * t.ShrinkageRate
		}

		if features[node.SplitFeature] <= node.Threshold {
			nodeID = node.LeftChild
		} else {
			nodeID = node.RightChild
		}
	}
	return 0.0
}

// countLeaves counts the leaf nodes in the arena.
func (t *Tree) countLeaves() int {
	count := 0
	for i := range t.Nodes {
		if t.Nodes[i].IsLeaf() {
			count++
		}
	}
	return count
}
