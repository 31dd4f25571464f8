// Package errors provides structured error handling for the sentiment
// pipeline. Error types carry enough context to be logged as structured
// events, and constructors attach stack traces via cockroachdb/errors.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		log.Printf("sentimentml warning: %v\n", w)
	}
	// zerolog warn hook, installed lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the handler invoked for non-fatal warnings, such as
// an ill-defined metric being reported with a fallback value.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the zerolog sink when one is installed,
// falling back to the plain handler otherwise.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// FeaturizationError indicates that text input could not be turned into a
// feature vector: the vectorizer was not fitted, or the caller passed an
// invalid batch (e.g. a nil slice where texts are required).
type FeaturizationError struct {
	Op     string
	Reason string
}

func (e *FeaturizationError) Error() string {
	return fmt.Sprintf("sentimentml: %s: featurization failed: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FeaturizationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "FeaturizationError")
}

// NewFeaturizationError creates a FeaturizationError with a stack trace.
func NewFeaturizationError(op, reason string) error {
	err := &FeaturizationError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// TrainingError indicates invalid training configuration or inconsistent
// training data. Training fails atomically; no partial model is produced.
type TrainingError struct {
	Op     string
	Reason string
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("sentimentml: %s: training failed: %s", e.Op, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *TrainingError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "TrainingError")
}

// NewTrainingError creates a TrainingError with a stack trace.
func NewTrainingError(op, reason string) error {
	err := &TrainingError{Op: op, Reason: reason}
	return errors.WithStack(err)
}

// ModelLoadError indicates a corrupt, truncated, or version-incompatible
// serialized model blob.
type ModelLoadError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ModelLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sentimentml: %s: model load failed: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("sentimentml: %s: model load failed: %s", e.Op, e.Reason)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ModelLoadError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "ModelLoadError")
}

// NewModelLoadError creates a ModelLoadError with a stack trace.
func NewModelLoadError(op, reason string, err error) error {
	loadErr := &ModelLoadError{Op: op, Reason: reason, Err: err}
	return errors.WithStack(loadErr)
}

// DimensionError indicates that a feature vector's width differs from the
// width the model was trained on.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("sentimentml: %s: dimension mismatch. Expected %d features, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "DimensionError")
}

// NewDimensionError creates a DimensionError with a stack trace.
func NewDimensionError(op string, expected, got int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// NotFittedError indicates that Predict or Transform was called on an
// estimator that has not been fitted.
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("sentimentml: %s: this estimator is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ValueError indicates an argument whose value is invalid for the operation,
// such as an empty vector passed to a metric.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("sentimentml: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// UndefinedMetricWarning is raised when a metric is ill-defined for the
// given inputs, e.g. precision with no predicted positives.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrEmptyData indicates that empty data was passed.
	ErrEmptyData = New("empty data")
)
