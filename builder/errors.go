// SPDX-License-Identifier: MIT
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed at package level.
//   - Callers branch with errors.Is(err, ErrX), never string matching.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context with fmt.Errorf and %w instead.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a numeric parameter (n, rows, cols, degree) is
// smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability value outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (see WithSeed, WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its retry budget without
// producing a topology that satisfies the requested invariants.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown or otherwise invalid parameter
// value, such as an unrecognized PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps an inner message with the given method context,
// producing "<Method>: <message>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s", method, fmt.Sprintf(format, args...))
}
