package demographics

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/JMMarchant/dnd-demographics/pkg/geometric"
)

func TestFractionsTopLevel(t *testing.T) {
	fractions, err := Fractions(1_000_000, 20)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	if len(fractions) != 20 {
		t.Fatalf("expected 20 fractions, got %d", len(fractions))
	}

	// The top level's fraction is exactly 1/targetSum: r^0 / targetSum.
	if top := fractions[len(fractions)-1]; top != 1.0/1_000_000 {
		t.Errorf("top fraction = %v, want exactly 1e-6", top)
	}

	// Adjacent fractions differ by the solved ratio, rarer toward the end.
	for i := 1; i < len(fractions); i++ {
		if fractions[i] >= fractions[i-1] {
			t.Errorf("fraction[%d]=%v not below fraction[%d]=%v", i, fractions[i], i-1, fractions[i-1])
		}
	}
}

func TestFractionsSumToOne(t *testing.T) {
	// Sum of r^i/targetSum over the solved series telescopes to 1.
	fractions, err := Fractions(1_000_000, 20)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	sum := 0.0
	for _, f := range fractions {
		sum += f
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("fractions sum = %v, want 1", sum)
	}
}

func TestFractionsDeterministic(t *testing.T) {
	a, err := Fractions(1_000_000, 20)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	b, err := Fractions(1_000_000, 20)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("fraction[%d] differs across calls: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFractionsInvalidLevels(t *testing.T) {
	_, err := Fractions(1_000_000, 1)
	var invalid *geometric.InvalidConfigurationError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidConfigurationError", err)
	}
}

func TestAllocateExactTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := DefaultConfig()

	for i := 0; i < 50; i++ {
		b, err := Allocate(1_000_000_000, cfg, rng)
		if err != nil {
			t.Fatalf("Allocate failed: %v", err)
		}
		if got := b.Total(); got != 1_000_000_000 {
			t.Fatalf("run %d: total = %d, want exactly 1000000000", i, got)
		}
	}
}

func TestAllocateBigWorld(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b, err := Allocate(1_000_000_000, DefaultConfig(), rng)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	// Levels 0 through 20 inclusive.
	if len(b) != 21 {
		t.Fatalf("expected 21 levels, got %d", len(b))
	}
	levels := b.Levels()
	if levels[0] != 0 || levels[len(levels)-1] != 20 {
		t.Errorf("levels span %d..%d, want 0..20", levels[0], levels[len(levels)-1])
	}

	// One in a million of a billion: ~1000 at the top, give or take rounding.
	if b[20] < 999 || b[20] > 1001 {
		t.Errorf("level 20 count = %d, want ~1000", b[20])
	}

	// Counts grow toward the lower levels.
	for lvl := 2; lvl <= 20; lvl++ {
		if b[lvl] >= b[lvl-1] {
			t.Errorf("level %d count %d not below level %d count %d", lvl, b[lvl], lvl-1, b[lvl-1])
		}
	}
}

func TestAllocateZeroPopulation(t *testing.T) {
	b, err := Allocate(0, DefaultConfig(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	for lvl, n := range b {
		if n != 0 {
			t.Errorf("level %d count = %d, want 0", lvl, n)
		}
	}
	if b.Total() != 0 {
		t.Errorf("total = %d, want 0", b.Total())
	}
}

func TestAllocateSeededReproducible(t *testing.T) {
	a, err := Allocate(123_456_789, DefaultConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	b, err := Allocate(123_456_789, DefaultConfig(), rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	for lvl := 0; lvl <= 20; lvl++ {
		if a[lvl] != b[lvl] {
			t.Errorf("level %d differs across identically seeded runs: %d vs %d", lvl, a[lvl], b[lvl])
		}
	}
}

func TestAllocatePropagatesSolverError(t *testing.T) {
	_, err := Allocate(1000, Config{TopLevelRatio: 1_000_000, NumLevels: 1}, nil)
	var invalid *geometric.InvalidConfigurationError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want InvalidConfigurationError", err)
	}
}

func TestExpectedMatchesPopulation(t *testing.T) {
	cfg := DefaultConfig()
	expected, err := Expected(1_000_000_000, cfg)
	if err != nil {
		t.Fatalf("Expected failed: %v", err)
	}

	if math.Abs(expected[20]-1000) > 1e-6 {
		t.Errorf("expected level 20 count = %v, want 1000", expected[20])
	}

	sum := 0.0
	for lvl, v := range expected {
		if lvl != 0 {
			sum += v
		}
	}
	sum += expected[0]
	if math.Abs(sum-1_000_000_000) > 1e-3 {
		t.Errorf("expected counts sum to %v, want 1e9", sum)
	}
}

func TestCompute(t *testing.T) {
	b, err := Compute(1_000_000)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got := b.Total(); got != 1_000_000 {
		t.Errorf("total = %d, want exactly 1000000", got)
	}
	if len(b) != 21 {
		t.Errorf("expected 21 levels, got %d", len(b))
	}
	// Exactly one in a million expected at the top; the stochastic rounding
	// leaves either 0, 1, or 2 there.
	if b[20] < 0 || b[20] > 2 {
		t.Errorf("level 20 count = %d, want 0..2", b[20])
	}
}

// fixedRand always returns the same sample, pinning every rounding trial.
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64 { return f.v }

func TestAllocateRoundingTrials(t *testing.T) {
	cfg := DefaultConfig()

	// A draw of 0.999... never rounds up; every level keeps its floor and
	// level 0 soaks up the leftovers.
	floor, err := Allocate(1_000_000, cfg, fixedRand{v: 0.999999})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	// A draw of 0 rounds up at every level with a nonzero remainder.
	ceil, err := Allocate(1_000_000, cfg, fixedRand{v: 0})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	if floor.Total() != 1_000_000 || ceil.Total() != 1_000_000 {
		t.Fatalf("totals = %d, %d, want exactly 1000000", floor.Total(), ceil.Total())
	}
	for lvl := 1; lvl <= 20; lvl++ {
		diff := ceil[lvl] - floor[lvl]
		if diff < 0 || diff > 1 {
			t.Errorf("level %d: ceil-floor = %d, want 0 or 1", lvl, diff)
		}
	}
	if ceil[0] > floor[0] {
		t.Errorf("round-up run left more residue (%d) than round-down run (%d)", ceil[0], floor[0])
	}
}
