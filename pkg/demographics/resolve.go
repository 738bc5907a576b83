package demographics

import (
	"fmt"

	"github.com/JMMarchant/dnd-demographics/pkg/geometric"
	"github.com/JMMarchant/dnd-demographics/pkg/spec"
	"github.com/JMMarchant/dnd-demographics/pkg/validation"
)

// ResolvedDemographics holds the computed breakdowns for a world.
type ResolvedDemographics struct {
	WorldName       string          `json:"world_name"`
	TotalPopulation int             `json:"total_population"`
	Config          Config          `json:"config"`
	GeometricRatio  float64         `json:"geometric_ratio"`
	World           Breakdown       `json:"world"`
	Expected        map[int]float64 `json:"expected"`

	Settlements []SettlementBreakdown `json:"settlements,omitempty"`
}

// SettlementBreakdown holds the per-settlement level counts.
type SettlementBreakdown struct {
	Name       string    `json:"name"`
	Kind       string    `json:"kind,omitempty"`
	Population int       `json:"population"`
	Levels     Breakdown `json:"levels"`
}

// ConfigFromSpec builds a Config from a world spec, falling back to the
// defaults for unset leveling values.
func ConfigFromSpec(s *spec.WorldSpec) Config {
	cfg := DefaultConfig()
	if s.Leveling.TopLevelRatio != 0 {
		cfg.TopLevelRatio = s.Leveling.TopLevelRatio
	}
	if s.Leveling.NumLevels != 0 {
		cfg.NumLevels = s.Leveling.NumLevels
	}
	return cfg
}

// Resolve computes the world-wide and per-settlement level breakdowns for a
// spec. A nil rng uses the process-wide math/rand source.
// Returns the resolved demographics and a validation report; the
// demographics are nil when the ratio solver fails.
func Resolve(s *spec.WorldSpec, rng Rand) (*ResolvedDemographics, *validation.Report) {
	report := validation.NewReport()
	cfg := ConfigFromSpec(s)

	// 1. Geometric ratio
	ratio, err := geometric.SolveRatio(cfg.TopLevelRatio, cfg.NumLevels)
	if err != nil {
		report.AddError(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  fmt.Sprintf("solving level distribution: %v", err),
			SpecPath: "leveling",
		})
		return nil, report
	}

	// 2. World breakdown
	world, err := Allocate(s.World.Population, cfg, rng)
	if err != nil {
		report.AddError(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  fmt.Sprintf("allocating world population: %v", err),
			SpecPath: "world.population",
		})
		return nil, report
	}

	// 3. Expected fractional counts, for display next to the rounded ones.
	expected, err := Expected(s.World.Population, cfg)
	if err != nil {
		report.AddError(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  fmt.Sprintf("computing expected counts: %v", err),
			SpecPath: "world.population",
		})
		return nil, report
	}

	// 4. Per-settlement breakdowns
	settlements := make([]SettlementBreakdown, 0, len(s.Settlements))
	for _, st := range s.Settlements {
		levels, err := Allocate(st.Population, cfg, rng)
		if err != nil {
			report.AddError(validation.Result{
				Level:    validation.LevelAnalytical,
				Message:  fmt.Sprintf("allocating settlement %q: %v", st.Name, err),
				SpecPath: "settlements",
			})
			return nil, report
		}
		settlements = append(settlements, SettlementBreakdown{
			Name:       st.Name,
			Kind:       st.Kind,
			Population: st.Population,
			Levels:     levels,
		})
	}

	// 5. Analytical checks
	validateResolved(s, cfg, expected, world, report)

	return &ResolvedDemographics{
		WorldName:       s.World.Name,
		TotalPopulation: s.World.Population,
		Config:          cfg,
		GeometricRatio:  ratio,
		World:           world,
		Expected:        expected,
		Settlements:     settlements,
	}, report
}

func validateResolved(s *spec.WorldSpec, cfg Config, expected map[int]float64, world Breakdown, report *validation.Report) {
	if expected[cfg.NumLevels] < 1 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("population %d is too small to expect a level %d NPC", s.World.Population, cfg.NumLevels),
			SpecPath:    "world.population",
			ActualValue: s.World.Population,
			Expected:    fmt.Sprintf(">= %.0f", cfg.TopLevelRatio),
		})
	}

	if world[0] < 0 {
		report.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     "rounding pushed the unlevelled remainder negative; population is too small for the level count",
			SpecPath:    "world.population",
			ActualValue: world[0],
			Expected:    ">= 0",
		})
	}
}
