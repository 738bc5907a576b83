// Package geometric solves for the common ratio of a geometric series
// whose sum over a fixed number of terms equals a target value.
package geometric

import "math"

// maxBoundIterations caps the linear search for the root bracket's upper
// limit. Targets large enough to exhaust it fail explicitly rather than
// looping indefinitely.
const maxBoundIterations = 1000

const (
	rootTolerance = 1e-12
	maxRootIters  = 100
)

// SolveRatio finds the ratio r > 1 of a geometric series of numLevels terms
// summing to targetSum. It solves r^n - S*r + (S-1) = 0, which has a trivial
// root at r = 1; the bracket lower limit starts one representable increment
// above 1 to exclude it.
func SolveRatio(targetSum float64, numLevels int) (float64, error) {
	if numLevels <= 1 {
		return 0, &InvalidConfigurationError{NumLevels: numLevels}
	}

	upper, err := upperBound(targetSum, numLevels, maxBoundIterations)
	if err != nil {
		return 0, err
	}
	lower := math.Nextafter(1, 2)

	n := float64(numLevels)
	f := func(r float64) float64 {
		return math.Pow(r, n) - targetSum*r + (targetSum - 1)
	}

	root, ok := brent(f, lower, upper, rootTolerance, maxRootIters)
	if !ok {
		return 0, &NoConvergenceError{
			TargetSum: targetSum,
			NumLevels: numLevels,
			Lower:     lower,
			Upper:     upper,
		}
	}
	return root, nil
}

// Sum evaluates the geometric series sum (1 - r^n) / (1 - r) for r != 1.
func Sum(ratio float64, numLevels int) float64 {
	return (1 - math.Pow(ratio, float64(numLevels))) / (1 - ratio)
}

// upperBound finds the smallest integer ratio >= 2 whose geometric sum over
// numLevels terms exceeds targetSum, probing at most maxIter candidates.
func upperBound(targetSum float64, numLevels int, maxIter int) (float64, error) {
	for i := 0; i < maxIter; i++ {
		r := float64(2 + i)
		if Sum(r, numLevels) > targetSum {
			return r, nil
		}
	}
	return 0, &BoundsNotFoundError{
		TargetSum:     targetSum,
		NumLevels:     numLevels,
		MaxIterations: maxIter,
	}
}
