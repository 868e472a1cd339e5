// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with errors.Wrapf ("<Method>: <detail>: <sentinel>").
//   • Constructors never panic; option constructors may.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, depth) below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not produce a consistent
// blueprint (nil constructor, edge to an unknown key).
var ErrConstructFailed = errors.New("builder: construction failed")
