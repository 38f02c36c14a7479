package utils

import "errors"

// ErrInvalidInput is wrapped by every estimator entry point that rejects a
// parameter: non-power-of-two layer sizes, non-positive hardware values.
var ErrInvalidInput = errors.New("invalid input")
