// Package demographics computes the breakdown of levelled NPCs in a world
// population. Level counts follow a geometric distribution: the top level
// holds a fixed tiny fraction of the population and each level below it is
// a constant ratio more populous.
package demographics

import (
	"math"
	"sort"

	"github.com/JMMarchant/dnd-demographics/pkg/geometric"
)

// Breakdown maps a level (0..NumLevels) to the number of NPCs at that level.
type Breakdown map[int]int

// Total returns the sum of all level counts.
func (b Breakdown) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

// Levels returns the levels present in the breakdown in ascending order.
func (b Breakdown) Levels() []int {
	levels := make([]int, 0, len(b))
	for lvl := range b {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// Fractions returns the per-level population fractions for a series of
// numLevels levels whose top level occurs once per targetSum members.
// Index 0 holds the lowest level's fraction; the last element is the top
// level's and equals exactly 1/targetSum. The fractions sum to 1.
func Fractions(targetSum float64, numLevels int) ([]float64, error) {
	r, err := geometric.SolveRatio(targetSum, numLevels)
	if err != nil {
		return nil, err
	}

	fractions := make([]float64, numLevels)
	for i := 0; i < numLevels; i++ {
		// r^i / targetSum, reversed so the rarest level lands last.
		fractions[numLevels-1-i] = math.Pow(r, float64(i)) / targetSum
	}
	return fractions, nil
}

// Allocate distributes a population across levels 0..cfg.NumLevels.
//
// Each level's expected count is split into an integer part and a
// fractional remainder; the remainder is rounded up with probability equal
// to its value, one independent draw per level. Level 0 receives whatever
// the higher levels did not claim, so the counts always sum to exactly
// population. Accumulated round-ups can in principle push level 0 negative
// when population is tiny relative to the level count; the caller owns
// keeping the inputs consistent, no clamping is applied.
//
// A nil rng uses the process-wide math/rand source.
func Allocate(population int, cfg Config, rng Rand) (Breakdown, error) {
	fractions, err := Fractions(cfg.TopLevelRatio, cfg.NumLevels)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = globalRand{}
	}

	counts := make(Breakdown, cfg.NumLevels+1)
	levelled := 0
	for lvl := 1; lvl <= cfg.NumLevels; lvl++ {
		rough := fractions[lvl-1] * float64(population)
		base, frac := math.Modf(rough)
		n := int(base)
		if rng.Float64() < frac {
			n++
		}
		counts[lvl] = n
		levelled += n
	}

	// Level 0 absorbs the unlevelled remainder and the rounding residue.
	counts[0] = population - levelled
	return counts, nil
}

// Expected returns the fractional expected count per level, before any
// rounding. Useful for display next to an allocated breakdown.
func Expected(population int, cfg Config) (map[int]float64, error) {
	fractions, err := Fractions(cfg.TopLevelRatio, cfg.NumLevels)
	if err != nil {
		return nil, err
	}

	expected := make(map[int]float64, cfg.NumLevels+1)
	levelled := 0.0
	for lvl := 1; lvl <= cfg.NumLevels; lvl++ {
		expected[lvl] = fractions[lvl-1] * float64(population)
		levelled += expected[lvl]
	}
	expected[0] = float64(population) - levelled
	return expected, nil
}

// Compute returns the levelled NPC breakdown for a population using the
// default one-in-a-million, 20-level configuration.
func Compute(population int) (Breakdown, error) {
	return Allocate(population, DefaultConfig(), nil)
}
