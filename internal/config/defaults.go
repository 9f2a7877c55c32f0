package config

// DefaultConfig returns a Config with the library defaults: unbudgeted
// depth-first search, the classic MBO parameters and a half-capacity
// uncorrelated generator.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Strategy:    "dfs",
			NodeLimit:   0,
			TimeLimit:   0,
			MaxFrontier: 0,
			Parallel:    4,
		},
		Heuristic: HeuristicConfig{
			Iterations:      100,
			SpermathecaSize: 15,
			MaxBroods:       10,
			Alpha:           0.9,
			MutationProb:    0.1,
			Colonies:        1,
			Seed:            0,
		},
		Generate: GenerateConfig{
			Kind:          "uncorrelated",
			Items:         50,
			Range:         1000,
			CapacityRatio: 0.5,
			Seed:          1,
			Format:        "text",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
