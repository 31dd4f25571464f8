package pipeline

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/sandeep-multani/SentimentAnalysisML/boosting"
	mlerrors "github.com/sandeep-multani/SentimentAnalysisML/pkg/errors"
)

// makeSentimentExamples builds a small separable corpus: every positive
// text contains "fantastic", every negative text contains "dreadful".
func makeSentimentExamples(n int) []Example {
	examples := make([]Example, 0, 2*n)
	for i := 0; i < n; i++ {
		examples = append(examples,
			Example{Text: fmt.Sprintf("the food was fantastic, visit %d", i), Label: true},
			Example{Text: fmt.Sprintf("the food was dreadful, visit %d", i), Label: false},
		)
	}
	return examples
}

func testConfig() TrainConfig {
	return TrainConfig{
		NumFeatures: 4096,
		UseIDF:      true,
		Boosting: boosting.Config{
			NumTrees:           20,
			NumLeaves:          4,
			MinExamplesPerLeaf: 1,
			LearningRate:       0.3,
		},
	}
}

func TestTrainAndPredict(t *testing.T) {
	model, err := Train(makeSentimentExamples(10), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	pos, err := model.Predict("what a fantastic evening")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if !pos.Label {
		t.Errorf("expected positive label, got probability %v", pos.Probability)
	}

	neg, err := model.Predict("a dreadful experience")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if neg.Label {
		t.Errorf("expected negative label, got probability %v", neg.Probability)
	}

	if pos.Probability <= neg.Probability {
		t.Errorf("positive probability %v should exceed negative %v", pos.Probability, neg.Probability)
	}
}

func TestTrainEmpty(t *testing.T) {
	_, err := Train(nil, DefaultTrainConfig())
	if err == nil {
		t.Fatal("expected error for empty training set")
	}
	var trainErr *mlerrors.TrainingError
	if !mlerrors.As(err, &trainErr) {
		t.Errorf("expected TrainingError, got %v", err)
	}
}

func TestTrainDeterministic(t *testing.T) {
	examples := makeSentimentExamples(10)
	cfg := testConfig()

	m1, err := Train(examples, cfg)
	if err != nil {
		t.Fatalf("first Train failed: %v", err)
	}
	m2, err := Train(examples, cfg)
	if err != nil {
		t.Fatalf("second Train failed: %v", err)
	}

	if !reflect.DeepEqual(m1.ensemble.Trees, m2.ensemble.Trees) {
		t.Error("two trainings on identical data produced different ensembles")
	}

	for _, text := range []string{"fantastic", "dreadful", "the food", ""} {
		p1, err := m1.Predict(text)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		p2, err := m2.Predict(text)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if p1 != p2 {
			t.Errorf("predictions diverge for %q: %+v vs %+v", text, p1, p2)
		}
	}
}

func TestLabelMatchesThreshold(t *testing.T) {
	model, err := Train(makeSentimentExamples(10), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	texts := []string{
		"fantastic fantastic fantastic",
		"dreadful",
		"the food was fine",
		"fantastic but also dreadful",
		"",
	}
	for _, text := range texts {
		p, err := model.Predict(text)
		if err != nil {
			t.Fatalf("Predict(%q) failed: %v", text, err)
		}
		if p.Label != (p.Probability >= 0.5) {
			t.Errorf("label %v inconsistent with probability %v for %q", p.Label, p.Probability, text)
		}
		if p.Probability < 0 || p.Probability > 1 {
			t.Errorf("probability %v out of range for %q", p.Probability, text)
		}
	}
}

func TestTwoExampleScenario(t *testing.T) {
	examples := []Example{
		{Text: "good", Label: true},
		{Text: "bad", Label: false},
	}
	cfg := TrainConfig{
		NumFeatures: 4096,
		UseIDF:      false,
		Boosting: boosting.Config{
			NumTrees:           1,
			NumLeaves:          2,
			MinExamplesPerLeaf: 1,
			LearningRate:       0.1,
		},
	}

	model, err := Train(examples, cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	good, err := model.Predict("good")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	bad, err := model.Predict("bad")
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	if !good.Label {
		t.Errorf("expected positive label for training positive, probability %v", good.Probability)
	}
	if bad.Label {
		t.Errorf("expected negative label for training negative, probability %v", bad.Probability)
	}
	if good.Score <= bad.Score {
		t.Errorf("positive score %v should exceed negative %v", good.Score, bad.Score)
	}
}

func TestPredictBatchOrder(t *testing.T) {
	model, err := Train(makeSentimentExamples(10), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	texts := []string{"fantastic", "dreadful", "fantastic trip", "", "dreadful place"}
	batch, err := model.PredictBatch(texts)
	if err != nil {
		t.Fatalf("PredictBatch failed: %v", err)
	}
	if len(batch) != len(texts) {
		t.Fatalf("expected %d predictions, got %d", len(texts), len(batch))
	}
	for i, text := range texts {
		single, err := model.Predict(text)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if batch[i] != single {
			t.Errorf("batch item %d differs from single prediction for %q", i, text)
		}
	}
}

func TestPredictBatchNil(t *testing.T) {
	model, err := Train(makeSentimentExamples(5), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if _, err := model.PredictBatch(nil); err == nil {
		t.Error("expected error for nil batch")
	}

	empty, err := model.PredictBatch([]string{})
	if err != nil {
		t.Fatalf("PredictBatch on empty slice failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected empty result, got %d predictions", len(empty))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	examples := makeSentimentExamples(10)
	model, err := Train(examples, testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	var buf bytes.Buffer
	if err := model.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Metadata().ID != model.Metadata().ID {
		t.Errorf("model ID changed across round trip: %s vs %s", loaded.Metadata().ID, model.Metadata().ID)
	}

	texts := []string{"fantastic", "dreadful", "the food was fine", ""}
	for _, text := range texts {
		orig, err := model.Predict(text)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		restored, err := loaded.Predict(text)
		if err != nil {
			t.Fatalf("Predict on loaded model failed: %v", err)
		}
		// gob preserves float64 bits, so predictions must be identical.
		if orig != restored {
			t.Errorf("round trip changed prediction for %q: %+v vs %+v", text, orig, restored)
		}
	}
}

func TestLoadCorrupt(t *testing.T) {
	model, err := Train(makeSentimentExamples(5), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	var buf bytes.Buffer
	if err := model.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	blob := buf.Bytes()

	tests := []struct {
		name string
		data []byte
	}{
		{"Empty input", nil},
		{"Truncated header", blob[:3]},
		{"Truncated payload", blob[:len(blob)/2]},
		{"Bad magic", append([]byte{'X'}, blob[1:]...)},
		{"Unknown version", append(append([]byte{}, blob[:4]...), append([]byte{99}, blob[5:]...)...)},
		{"Garbage payload", append(append([]byte{}, blob[:5]...), 0xDE, 0xAD, 0xBE, 0xEF)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var loadErr *mlerrors.ModelLoadError
			if !mlerrors.As(err, &loadErr) {
				t.Errorf("expected ModelLoadError, got %v", err)
			}
		})
	}
}

func TestEvaluatePerfect(t *testing.T) {
	examples := makeSentimentExamples(10)
	model, err := Train(examples, testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	m, err := Evaluate(model, examples)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	for name, got := range map[string]float64{
		"accuracy":  m.Accuracy,
		"auc":       m.AUC,
		"f1":        m.F1,
		"precision": m.Precision,
		"recall":    m.Recall,
	} {
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("%s = %v, want 1.0 on perfectly separated training data", name, got)
		}
	}
}

func TestEvaluateEmpty(t *testing.T) {
	model, err := Train(makeSentimentExamples(5), testConfig())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	if _, err := Evaluate(model, nil); err == nil {
		t.Error("expected error for empty evaluation set")
	}
}

func TestMetadata(t *testing.T) {
	cfg := testConfig()
	model, err := Train(makeSentimentExamples(5), cfg)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	meta := model.Metadata()
	if meta.ID == "" {
		t.Error("expected a model ID")
	}
	if meta.CreatedAt.IsZero() {
		t.Error("expected a creation timestamp")
	}
	if meta.Config.NumFeatures != cfg.NumFeatures {
		t.Errorf("config NumFeatures = %d, want %d", meta.Config.NumFeatures, cfg.NumFeatures)
	}
	if model.NumFeatures() != cfg.NumFeatures {
		t.Errorf("NumFeatures() = %d, want %d", model.NumFeatures(), cfg.NumFeatures)
	}
}
