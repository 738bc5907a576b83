package validation

import (
	"fmt"

	"github.com/JMMarchant/dnd-demographics/pkg/spec"
)

// ValidateSchema performs schema validation on a parsed WorldSpec.
// It checks structural correctness before any computation.
func ValidateSchema(s *spec.WorldSpec) *Report {
	r := NewReport()

	validatePopulation(s, r)
	validateLeveling(s, r)
	validateSettlements(s, r)

	return r
}

func validatePopulation(s *spec.WorldSpec, r *Report) {
	if s.World.Population < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "world population must be non-negative",
			SpecPath:    "world.population",
			ActualValue: s.World.Population,
			Expected:    ">= 0",
		})
	}
}

func validateLeveling(s *spec.WorldSpec, r *Report) {
	l := s.Leveling

	// Zero means "use the default"; only explicit values are checked.
	if l.TopLevelRatio != 0 && l.TopLevelRatio <= 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "leveling.top_level_ratio must be greater than 1",
			SpecPath:    "leveling.top_level_ratio",
			ActualValue: l.TopLevelRatio,
			Expected:    "> 1",
			Suggestions: []string{"A ratio of 1000000 means one NPC in a million reaches the top level"},
		})
	}

	if l.NumLevels != 0 && l.NumLevels < 2 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "leveling.num_levels must be at least 2 for a geometric distribution",
			SpecPath:    "leveling.num_levels",
			ActualValue: l.NumLevels,
			Expected:    ">= 2",
		})
	}
}

func validateSettlements(s *spec.WorldSpec, r *Report) {
	seen := map[string]bool{}
	for i, st := range s.Settlements {
		path := fmt.Sprintf("settlements[%d]", i)

		if st.Name == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  "settlement name must not be empty",
				SpecPath: path + ".name",
				Expected: "non-empty string",
			})
		} else if seen[st.Name] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate settlement name %q", st.Name),
				SpecPath:    path + ".name",
				ActualValue: st.Name,
				Expected:    "unique name",
			})
		}
		seen[st.Name] = true

		if st.Population < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("settlement %q population must be non-negative", st.Name),
				SpecPath:    path + ".population",
				ActualValue: st.Population,
				Expected:    ">= 0",
			})
		}
	}

	if total := s.SettlementPopulation(); total > s.World.Population {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("settlement populations sum to %d, exceeding the world population %d", total, s.World.Population),
			SpecPath:    "settlements",
			ActualValue: total,
			Expected:    fmt.Sprintf("<= %d", s.World.Population),
			Suggestions: []string{"Reduce settlement populations or raise world.population"},
		})
	}
}
