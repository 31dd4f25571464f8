package pipeline

import (
	"bytes"
	"io"
	"os"

	"github.com/sandeep-multani/SentimentAnalysisML/boosting"
	"github.com/sandeep-multani/SentimentAnalysisML/calibration"
	coremodel "github.com/sandeep-multani/SentimentAnalysisML/core/model"
	"github.com/sandeep-multani/SentimentAnalysisML/feature"
	"github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// Serialized model layout: 4-byte magic, 1-byte format version, gob payload.
var modelMagic = [4]byte{'S', 'N', 'T', 'M'}

const formatVersion byte = 1

// modelPayload is the gob-encoded body of a serialized model. Fields are
// exported so gob can see them; the Model itself keeps its stages private.
type modelPayload struct {
	Vectorizer *feature.HashingVectorizer
	Ensemble   *boosting.Ensemble
	Calibrator *calibration.PlattScaler
	Meta       Metadata
}

// Save writes the model to w. The encoding preserves float64 values
// bit-exactly, so a loaded model reproduces the original's predictions.
func (m *Model) Save(w io.Writer) error {
	if _, err := w.Write(modelMagic[:]); err != nil {
		return errors.Wrap(err, "writing model magic")
	}
	if _, err := w.Write([]byte{formatVersion}); err != nil {
		return errors.Wrap(err, "writing format version")
	}
	payload := modelPayload{
		Vectorizer: m.vectorizer,
		Ensemble:   m.ensemble,
		Calibrator: m.calibrator,
		Meta:       m.meta,
	}
	return coremodel.SaveModelToWriter(&payload, w)
}

// Load reads a model previously written by Save. Truncated or corrupt input
// and unknown format versions are rejected with a ModelLoadError.
func Load(r io.Reader) (*Model, error) {
	header := make([]byte, len(modelMagic)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, errors.NewModelLoadError("pipeline.Load", "truncated model header", err)
	}
	if !bytes.Equal(header[:len(modelMagic)], modelMagic[:]) {
		return nil, errors.NewModelLoadError("pipeline.Load", "not a serialized sentiment model", nil)
	}
	if version := header[len(modelMagic)]; version != formatVersion {
		return nil, errors.NewModelLoadError("pipeline.Load", "unsupported model format version", nil)
	}

	var payload modelPayload
	if err := coremodel.LoadModelFromReader(&payload, r); err != nil {
		return nil, errors.NewModelLoadError("pipeline.Load", "corrupt model payload", err)
	}
	if payload.Vectorizer == nil || payload.Ensemble == nil || payload.Calibrator == nil {
		return nil, errors.NewModelLoadError("pipeline.Load", "incomplete model payload", nil)
	}

	return &Model{
		vectorizer: payload.Vectorizer,
		ensemble:   payload.Ensemble,
		calibrator: payload.Calibrator,
		meta:       payload.Meta,
	}, nil
}

// SaveFile saves the model to the named file.
func (m *Model) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating model file %s", path)
	}
	defer f.Close()

	if err := m.Save(f); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile loads a model from the named file.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewModelLoadError("pipeline.LoadFile", "opening model file", err)
	}
	defer f.Close()
	return Load(f)
}
