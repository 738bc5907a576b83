package demographics

// Config holds the leveling parameters for a demographic computation.
type Config struct {
	// TopLevelRatio is the reciprocal of the top level's frequency:
	// 1_000_000 means one in a million NPCs is at the highest level.
	TopLevelRatio float64 `json:"top_level_ratio"`

	// NumLevels is the count of non-zero levels (1..NumLevels). Level 0 is
	// reserved for the unlevelled remainder.
	NumLevels int `json:"num_levels"`
}

// DefaultConfig returns the standard one-in-a-million, 20-level setup.
func DefaultConfig() Config {
	return Config{
		TopLevelRatio: 1_000_000,
		NumLevels:     20,
	}
}
