// Package model provides the interfaces and base types shared by the
// pipeline's estimators.
package model

import (
	"io"
)

// Persistable is the interface for models that can be serialized to an
// opaque blob and restored from it.
type Persistable interface {
	// Save writes the model to w.
	Save(w io.Writer) error
}

// ParameterGetter is the interface for estimators that expose their
// hyperparameters.
type ParameterGetter interface {
	// GetParams returns the estimator's hyperparameters.
	GetParams() map[string]interface{}
}
