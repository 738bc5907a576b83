package spec

// WorldSpec is the top-level specification for a fantasy world's population.
type WorldSpec struct {
	SpecVersion string          `yaml:"spec_version" json:"spec_version"`
	World       WorldDef        `yaml:"world" json:"world"`
	Leveling    LevelingDef     `yaml:"leveling" json:"leveling"`
	Settlements []SettlementDef `yaml:"settlements" json:"settlements"`
}

type WorldDef struct {
	Name       string `yaml:"name" json:"name"`
	Population int    `yaml:"population" json:"population"`
}

// LevelingDef configures the geometric level distribution. Zero values fall
// back to the defaults (one-in-a-million top level, 20 levels).
type LevelingDef struct {
	TopLevelRatio float64 `yaml:"top_level_ratio" json:"top_level_ratio"`
	NumLevels     int     `yaml:"num_levels" json:"num_levels"`
}

// SettlementDef is a named population center within the world.
type SettlementDef struct {
	Name       string `yaml:"name" json:"name"`
	Kind       string `yaml:"kind,omitempty" json:"kind,omitempty"` // "city", "town", "village"
	Population int    `yaml:"population" json:"population"`
}

// SettlementByName returns the settlement with the given name, or nil if
// not found.
func (s *WorldSpec) SettlementByName(name string) *SettlementDef {
	for i := range s.Settlements {
		if s.Settlements[i].Name == name {
			return &s.Settlements[i]
		}
	}
	return nil
}

// SettlementPopulation returns the combined population of all settlements.
func (s *WorldSpec) SettlementPopulation() int {
	total := 0
	for _, st := range s.Settlements {
		total += st.Population
	}
	return total
}
