package model

import "gonum.org/v1/gonum/mat"

// TextTransformer is the interface for text featurizers with a two-phase
// fit-then-transform lifecycle.
type TextTransformer interface {
	// Fit learns corpus statistics from the training texts.
	Fit(texts []string) error

	// Transform featurizes one text into a fixed-width vector.
	Transform(text string) ([]float64, error)

	// TransformAll featurizes a batch of texts, one row per text.
	TransformAll(texts []string) (*mat.Dense, error)

	// FitTransform runs Fit and TransformAll in one step.
	FitTransform(texts []string) (*mat.Dense, error)
}
