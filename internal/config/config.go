package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/aoc2022/geode"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Input   InputConfig   `mapstructure:"input" yaml:"input" json:"input"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
	Solver  SolverConfig  `mapstructure:"solver" yaml:"solver" json:"solver"`
	Geodes  GeodesConfig  `mapstructure:"geodes" yaml:"geodes" json:"geodes"`
}

// InputConfig locates puzzle inputs
type InputConfig struct {
	// Directory holding <day>.txt files
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir" validate:"required"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level" json:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" yaml:"format" json:"format" validate:"required,oneof=json text"`
}

// SolverConfig holds settings shared by every day
type SolverConfig struct {
	// Concurrent searches; 0 means one per CPU
	Workers int `mapstructure:"workers" yaml:"workers" json:"workers" validate:"min=0"`
}

// GeodesConfig tunes the blueprint search
type GeodesConfig struct {
	PartOneMinutes    int `mapstructure:"part_one_minutes" yaml:"part_one_minutes" json:"part_one_minutes" validate:"min=1"`
	PartTwoMinutes    int `mapstructure:"part_two_minutes" yaml:"part_two_minutes" json:"part_two_minutes" validate:"min=1"`
	PartTwoBlueprints int `mapstructure:"part_two_blueprints" yaml:"part_two_blueprints" json:"part_two_blueprints" validate:"min=1"`

	// Successors kept per search state; 0 keeps all
	MaxBranches int `mapstructure:"max_branches" yaml:"max_branches" json:"max_branches" validate:"min=0"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	// AOC_ prefix, e.g. AOC_GEODES_MAX_BRANCHES
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)
	v.SetDefault("geodes.max_branches", geode.DefaultMaxBranches)

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	cfg := &Config{}
	SetDefaults(cfg)
	cfg.Geodes.MaxBranches = geode.DefaultMaxBranches

	return cfg
}

// bindEnv registers every key so AutomaticEnv can populate Unmarshal
// without a config file present.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"input.dir",
		"logging.level",
		"logging.format",
		"solver.workers",
		"geodes.part_one_minutes",
		"geodes.part_two_minutes",
		"geodes.part_two_blueprints",
		"geodes.max_branches",
	} {
		_ = v.BindEnv(key)
	}
}
