// SPDX-License-Identifier: MIT
// Package builder provides validation helpers for constructor parameters.

package builder

import "github.com/pkg/errors"

// validateMin returns ErrTooFewVertices with method context when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, param, got, min)
	}
	return nil
}

// validateProbability returns ErrInvalidProbability when p ∉ [0,1].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
			method, p, MinProbability, MaxProbability)
	}
	return nil
}
