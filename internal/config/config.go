package config

import "time"

// Config is the root configuration of the knapsack CLI. Command-line flags
// override the values loaded here.
type Config struct {
	Solver    SolverConfig    `mapstructure:"solver" yaml:"solver"`
	Heuristic HeuristicConfig `mapstructure:"heuristic" yaml:"heuristic"`
	Generate  GenerateConfig  `mapstructure:"generate" yaml:"generate"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// SolverConfig configures the exact search of the solve command.
type SolverConfig struct {
	Strategy    string        `mapstructure:"strategy" yaml:"strategy" validate:"oneof=dfs best-first both"`
	NodeLimit   int64         `mapstructure:"node_limit" yaml:"node_limit" validate:"min=0"`
	TimeLimit   time.Duration `mapstructure:"time_limit" yaml:"time_limit" validate:"min=0s"`
	MaxFrontier int           `mapstructure:"max_frontier" yaml:"max_frontier" validate:"min=0"`
	Parallel    int           `mapstructure:"parallel" yaml:"parallel" validate:"min=1,max=256"`
}

// HeuristicConfig configures the MBO run of the heuristic command.
type HeuristicConfig struct {
	Iterations      int     `mapstructure:"iterations" yaml:"iterations" validate:"min=0"`
	SpermathecaSize int     `mapstructure:"spermatheca" yaml:"spermatheca" validate:"min=1"`
	MaxBroods       int     `mapstructure:"broods" yaml:"broods" validate:"min=1"`
	Alpha           float64 `mapstructure:"alpha" yaml:"alpha" validate:"gt=0,lte=1"`
	MutationProb    float64 `mapstructure:"mutation" yaml:"mutation" validate:"gte=0,lte=1"`
	Colonies        int     `mapstructure:"colonies" yaml:"colonies" validate:"min=1,max=256"`
	Seed            int64   `mapstructure:"seed" yaml:"seed"`
}

// GenerateConfig configures the instance generator of the generate command.
type GenerateConfig struct {
	Kind          string  `mapstructure:"kind" yaml:"kind" validate:"oneof=uncorrelated weak strong subset-sum"`
	Items         int     `mapstructure:"items" yaml:"items" validate:"min=0"`
	Range         int64   `mapstructure:"range" yaml:"range" validate:"min=1"`
	CapacityRatio float64 `mapstructure:"capacity_ratio" yaml:"capacity_ratio" validate:"gte=0,lte=1"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	Format        string  `mapstructure:"format" yaml:"format" validate:"oneof=text yaml"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}
