package log

// Standard attribute keys for pipeline operations. Using these keys keeps
// log output consistent and filterable across components.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "HashingVectorizer", "GBDTTrainer", "PlattScaler"
	ModelNameKey = "model.name"

	// ModelIDKey carries the UUID assigned to a trained model.
	ModelIDKey = "model.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "evaluate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "feature", "boosting", "pipeline"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of samples (rows) processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the feature-vector width.
	FeaturesKey = "data.features"

	// BatchSizeKey is the size of a prediction batch.
	BatchSizeKey = "data.batch_size"
)

// Training and evaluation metrics.
const (
	// DurationMsKey is the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey is classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// AUCKey is the area under the ROC curve.
	AUCKey = "metrics.auc"

	// F1Key is the F1 score at the 0.5 threshold.
	F1Key = "metrics.f1"

	// LossKey is the training loss value.
	LossKey = "metrics.loss"

	// IterationKey is the current boosting round.
	IterationKey = "training.iteration"

	// TreesKey is the number of trees in the ensemble.
	TreesKey = "training.trees"

	// LearningRateKey is the shrinkage applied to each tree's outputs.
	LearningRateKey = "hyperparams.learning_rate"

	// SeedKey is the seed used for the content-stable train/test split.
	SeedKey = "config.seed"
)

// Standard operation values.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationEvaluate  = "evaluate"
)
