package geometric

import "fmt"

// InvalidConfigurationError reports a level count for which a geometric
// series is undefined or trivial.
type InvalidConfigurationError struct {
	NumLevels int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("geometric: num_levels must be greater than 1 (got %d)", e.NumLevels)
}

// BoundsNotFoundError reports that the upper-bracket search hit its
// iteration cap before the geometric sum exceeded the target.
type BoundsNotFoundError struct {
	TargetSum     float64
	NumLevels     int
	MaxIterations int
}

func (e *BoundsNotFoundError) Error() string {
	return fmt.Sprintf("geometric: no upper bound for target_sum=%g num_levels=%d within %d iterations",
		e.TargetSum, e.NumLevels, e.MaxIterations)
}

// NoConvergenceError reports that the root-finder failed to converge on a
// valid-looking bracket. Distinct from BoundsNotFoundError: this is a
// numerical failure, not a bounds-search failure.
type NoConvergenceError struct {
	TargetSum float64
	NumLevels int
	Lower     float64
	Upper     float64
}

func (e *NoConvergenceError) Error() string {
	return fmt.Sprintf("geometric: root-finder did not converge for target_sum=%g num_levels=%d on bracket (%g, %g)",
		e.TargetSum, e.NumLevels, e.Lower, e.Upper)
}
