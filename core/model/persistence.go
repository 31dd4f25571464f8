package model

import (
	"encoding/gob"
	"io"

	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// SaveModelToWriter gob-encodes a model to w. The encoding preserves
// float64 bit patterns, so a saved model reproduces its predictions
// exactly after loading.
func SaveModelToWriter(model interface{}, w io.Writer) error {
	encoder := gob.NewEncoder(w)
	if err := encoder.Encode(model); err != nil {
		return errors.Wrap(err, "failed to encode model")
	}
	return nil
}

// LoadModelFromReader gob-decodes a model from r into model, which must be
// a pointer.
func LoadModelFromReader(model interface{}, r io.Reader) error {
	decoder := gob.NewDecoder(r)
	if err := decoder.Decode(model); err != nil {
		return errors.Wrap(err, "failed to decode model")
	}
	return nil
}

