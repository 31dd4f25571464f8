package errors

import (
	"math"
)

// CheckValues returns a ValueError if values contain NaN or Inf. Used by the
// trainer and calibrator to surface numerical instability immediately instead
// of letting it propagate into the model.
func CheckValues(operation string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValueError(operation, "numerical instability detected (NaN or Inf)")
		}
	}
	return nil
}

// CheckScalar checks a single value for NaN or Inf.
func CheckScalar(operation string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValueError(operation, "numerical instability detected (NaN or Inf)")
	}
	return nil
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// StabilizeExp computes exp with protection against overflow.
func StabilizeExp(value float64) float64 {
	const maxExp = 700.0 // exp(700) is close to the maximum float64
	if value > maxExp {
		return math.Exp(maxExp)
	}
	if value < -maxExp {
		return 0
	}
	return math.Exp(value)
}

// StabilizeLog computes log(max(value, epsilon)) to avoid log(0).
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-10
	if value < epsilon {
		return math.Log(epsilon)
	}
	return math.Log(value)
}
