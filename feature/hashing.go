// Package feature converts raw text into fixed-width numeric feature
// vectors via the hashing trick.
package feature

import (
	"hash/fnv"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/mat"

	"github.com/sandeep-multani/SentimentAnalysisML/core/model"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/log"
)

// DefaultNumFeatures is the default feature-vector width.
const DefaultNumFeatures = 1 << 16

// HashingVectorizer maps text to a fixed-width term-frequency vector.
// Tokens are case-normalized, hashed with FNV-1a and bucketed modulo
// NumFeatures; collisions are accepted as dimensionality reduction.
//
// The vectorizer has two lifecycle phases: Fit scans the training corpus
// once to estimate document frequencies for IDF weighting, after which the
// vectorizer is immutable; Transform is a stateless per-text application of
// the fitted statistics. All fields are exported for gob encoding so a
// vectorizer bundled into a saved model transforms inference-time text
// identically to training-time text.
type HashingVectorizer struct {
	State *model.StateManager

	// NumFeatures is the fixed width F of produced vectors.
	NumFeatures int

	// UseIDF enables inverse-document-frequency weighting estimated at Fit.
	UseIDF bool

	// IDF holds the per-slot smoothed IDF weights when UseIDF is set.
	IDF []float64

	// DocCount is the number of documents seen at Fit.
	DocCount int
}

var (
	_ model.TextTransformer = (*HashingVectorizer)(nil)
	_ model.ParameterGetter = (*HashingVectorizer)(nil)
)

// NewHashingVectorizer creates a vectorizer producing vectors of width
// numFeatures. A numFeatures of 0 selects DefaultNumFeatures.
func NewHashingVectorizer(numFeatures int, useIDF bool) *HashingVectorizer {
	if numFeatures <= 0 {
		numFeatures = DefaultNumFeatures
	}
	return &HashingVectorizer{
		State:       model.NewStateManager(),
		NumFeatures: numFeatures,
		UseIDF:      useIDF,
	}
}

// Tokenize splits text into lowercase tokens. Token boundaries are any
// runes that are neither letters nor digits.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// slot returns the feature index for a token: FNV-1a 64-bit modulo the
// vector width.
func (v *HashingVectorizer) slot(token string) int {
	h := fnv.New64a()
	h.Write([]byte(token))
	return int(h.Sum64() % uint64(v.NumFeatures))
}

// Fit estimates corpus statistics from the training texts. With UseIDF it
// computes smoothed per-slot IDF weights: ln((1+n)/(1+df)) + 1.
func (v *HashingVectorizer) Fit(texts []string) error {
	if texts == nil {
		return errors.NewFeaturizationError("HashingVectorizer.Fit", "texts must not be nil")
	}
	if len(texts) == 0 {
		return errors.NewFeaturizationError("HashingVectorizer.Fit", "empty corpus")
	}

	v.DocCount = len(texts)
	if v.UseIDF {
		df := make([]int, v.NumFeatures)
		seen := make(map[int]struct{})
		for _, text := range texts {
			clear(seen)
			for _, token := range Tokenize(text) {
				seen[v.slot(token)] = struct{}{}
			}
			for j := range seen {
				df[j]++
			}
		}

		n := float64(v.DocCount)
		v.IDF = make([]float64, v.NumFeatures)
		for j := range v.IDF {
			v.IDF[j] = errors.StabilizeLog((1+n)/(1+float64(df[j]))) + 1
		}
	}

	v.State.SetDimensions(v.NumFeatures, len(texts))
	v.State.SetFitted()

	logger := log.GetLoggerWithName("feature.vectorizer")
	logger.Debug("vectorizer fitted",
		log.SamplesKey, len(texts),
		log.FeaturesKey, v.NumFeatures,
	)
	return nil
}

// Transform converts one text into a feature vector of width NumFeatures.
// The vector holds per-slot term-frequency counts, IDF-weighted when the
// vectorizer was fitted with UseIDF. A caller with no text must pass the
// empty string; an empty text yields the zero vector.
func (v *HashingVectorizer) Transform(text string) ([]float64, error) {
	if err := v.State.RequireFitted("HashingVectorizer", "Transform"); err != nil {
		return nil, err
	}

	vec := make([]float64, v.NumFeatures)
	for _, token := range Tokenize(text) {
		vec[v.slot(token)]++
	}
	if v.UseIDF {
		for j := range vec {
			if vec[j] != 0 {
				vec[j] *= v.IDF[j]
			}
		}
	}
	return vec, nil
}

// TransformAll converts a batch of texts into a dense row-per-text matrix.
func (v *HashingVectorizer) TransformAll(texts []string) (*mat.Dense, error) {
	if texts == nil {
		return nil, errors.NewFeaturizationError("HashingVectorizer.TransformAll", "texts must not be nil")
	}
	if len(texts) == 0 {
		return nil, errors.NewFeaturizationError("HashingVectorizer.TransformAll", "empty batch")
	}

	X := mat.NewDense(len(texts), v.NumFeatures, nil)
	for i, text := range texts {
		vec, err := v.Transform(text)
		if err != nil {
			return nil, err
		}
		X.SetRow(i, vec)
	}
	return X, nil
}

// FitTransform runs Fit followed by TransformAll on the same texts.
func (v *HashingVectorizer) FitTransform(texts []string) (*mat.Dense, error) {
	if err := v.Fit(texts); err != nil {
		return nil, err
	}
	return v.TransformAll(texts)
}

// GetParams returns the vectorizer's hyperparameters.
func (v *HashingVectorizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"num_features": v.NumFeatures,
		"use_idf":      v.UseIDF,
	}
}
