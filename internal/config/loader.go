package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides: KNAPSACK_SOLVER_NODE_LIMIT=5000
// sets solver.node_limit.
const EnvPrefix = "KNAPSACK"

// ConfigLoader handles loading configuration from files and the environment.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the YAML file at path on top of the
// defaults, then applies KNAPSACK_* environment overrides. An empty path
// skips the file.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration from path. If the file doesn't
// exist, only the defaults and the environment are used.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	return l.Load(path)
}

// newViper returns a Viper instance preloaded with DefaultConfig and bound to
// the environment. Every key needs a default for AutomaticEnv to reach it
// during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("solver.strategy", d.Solver.Strategy)
	v.SetDefault("solver.node_limit", d.Solver.NodeLimit)
	v.SetDefault("solver.time_limit", d.Solver.TimeLimit)
	v.SetDefault("solver.max_frontier", d.Solver.MaxFrontier)
	v.SetDefault("solver.parallel", d.Solver.Parallel)

	v.SetDefault("heuristic.iterations", d.Heuristic.Iterations)
	v.SetDefault("heuristic.spermatheca", d.Heuristic.SpermathecaSize)
	v.SetDefault("heuristic.broods", d.Heuristic.MaxBroods)
	v.SetDefault("heuristic.alpha", d.Heuristic.Alpha)
	v.SetDefault("heuristic.mutation", d.Heuristic.MutationProb)
	v.SetDefault("heuristic.colonies", d.Heuristic.Colonies)
	v.SetDefault("heuristic.seed", d.Heuristic.Seed)

	v.SetDefault("generate.kind", d.Generate.Kind)
	v.SetDefault("generate.items", d.Generate.Items)
	v.SetDefault("generate.range", d.Generate.Range)
	v.SetDefault("generate.capacity_ratio", d.Generate.CapacityRatio)
	v.SetDefault("generate.seed", d.Generate.Seed)
	v.SetDefault("generate.format", d.Generate.Format)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	return v
}
