package log

import (
	"context"
	"strings"
	"testing"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("training started",
		SamplesKey, 100,
		FeaturesKey, 256,
	)

	out := buffer.String()
	if !strings.Contains(out, `"message":"training started"`) {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, `"data.samples":100`) {
		t.Errorf("output missing samples attribute: %s", out)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("should be dropped")
	logger.Info("should be dropped too")
	logger.Warn("kept")

	out := buffer.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestWithPropagatesFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	child := logger.With(ComponentKey, "boosting.trainer")
	child.Info("tree built", IterationKey, 3)

	out := buffer.String()
	if !strings.Contains(out, `"ml.component":"boosting.trainer"`) {
		t.Errorf("component field missing: %s", out)
	}
}

func TestProviderSwap(t *testing.T) {
	provider, buffer := NewTestLoggerProvider(LevelInfo)
	SetLoggerProvider(provider)
	defer SetLoggerProvider(&slogProvider{})

	GetLoggerWithName("pipeline.model").Info("hello")

	if !strings.Contains(buffer.String(), "pipeline.model") {
		t.Errorf("named logger did not tag component: %s", buffer.String())
	}
}

func TestEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelWarn)
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
