package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvpath/minpq"
)

// EnvPrefix prefixes every environment variable read by pathfind.
const EnvPrefix = "PATHFIND"

// Supported solver names.
const (
	SolverDijkstra = "dijkstra"
	SolverAStar    = "astar"
	SolverDAG      = "dag"
)

// Config validation errors
var (
	ErrUnknownSolver    = errors.New("solver must be dijkstra, astar or dag")
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrMissingGraph     = errors.New("graph file is required")
	ErrMissingEndpoints = errors.New("both --from and --to are required")
)

// Config is the pathfind configuration. Values come from a .env file, then
// PATHFIND_* environment variables, then command-line flags.
type Config struct {
	Graph     string `envconfig:"GRAPH"`
	Solver    string `envconfig:"SOLVER" default:"dijkstra"`
	Queue     string `envconfig:"QUEUE" default:"optimized"`
	EarlyExit bool   `envconfig:"EARLY_EXIT" default:"true"`
	Metrics   bool   `envconfig:"METRICS" default:"false"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
}

// LoadConfig reads envFile when it exists and then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	switch cfg.Solver {
	case SolverDijkstra, SolverAStar, SolverDAG:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSolver, cfg.Solver)
	}
	if _, err := minpq.ParseKind(cfg.Queue); err != nil {
		return err
	}
	if f := strings.ToLower(cfg.LogFormat); f != "json" && f != "console" {
		return ErrInvalidLogFormat
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}
