package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dag"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
	"github.com/katalvlaran/lvpath/internal/logging"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/minpq"
)

// Result is the outcome of one route query.
type Result struct {
	Path     []string
	Distance float64
	Stats    core.Stats
}

type routeOpts struct {
	from, to string
}

func newRouteCommand(cfg *Config) *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print the shortest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ValidateConfig(cfg); err != nil {
				return err
			}
			log, err := logging.New(logging.Config{
				Format: cfg.LogFormat,
				Level:  cfg.LogLevel,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var reg *prometheus.Registry
			if cfg.Metrics {
				reg = prometheus.NewRegistry()
			}
			res, err := runRoute(cfg, opts.from, opts.to, reg, log)
			if err != nil {
				log.Error("route failed", zap.Error(err))
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " -> "))
			fmt.Fprintf(out, "distance: %g\n", res.Distance)
			fmt.Fprintf(out, "settled: %d\n", res.Stats.Settled)
			if reg != nil {
				return writeMetrics(out, reg)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Graph, "graph", cfg.Graph, "YAML graph file")
	flags.StringVar(&opts.from, "from", "", "start vertex")
	flags.StringVar(&opts.to, "to", "", "goal vertex")
	flags.StringVar(&cfg.Solver, "solver", cfg.Solver, "dijkstra, astar or dag")
	flags.StringVar(&cfg.Queue, "queue", cfg.Queue, "unsorted, doublemap, heap or optimized")
	flags.BoolVar(&cfg.EarlyExit, "early-exit", cfg.EarlyExit, "stop A* once the goal is settled")
	flags.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print solver metrics after the route")

	return cmd
}

// runRoute loads cfg.Graph and solves from→to with the configured solver.
// A nil reg disables metrics.
func runRoute(cfg *Config, from, to string, reg *prometheus.Registry, log *zap.Logger) (*Result, error) {
	if cfg.Graph == "" {
		return nil, ErrMissingGraph
	}
	if from == "" || to == "" {
		return nil, ErrMissingEndpoints
	}
	kind, err := minpq.ParseKind(cfg.Queue)
	if err != nil {
		return nil, err
	}

	g, err := graphio.LoadFile(cfg.Graph)
	if err != nil {
		return nil, err
	}
	log.Debug("graph loaded",
		zap.String("file", cfg.Graph),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	var m *metrics.SolverMetrics
	if reg != nil {
		m = metrics.New(reg)
	}

	path, run, err := solve(cfg, g, from, to, kind, m)
	if err != nil {
		return nil, fmt.Errorf("%s to %s: %w", from, to, err)
	}
	res := &Result{Path: path, Distance: run.DistTo(to), Stats: run.Stats()}
	log.Info("route found",
		zap.String("solver", cfg.Solver),
		zap.String("queue", kind.String()),
		zap.Int("hops", len(path)-1),
		zap.Float64("distance", res.Distance),
		zap.Int("settled", res.Stats.Settled),
	)

	return res, nil
}

// finished is the part of a completed solver the report needs.
type finished interface {
	DistTo(v string) float64
	Stats() core.Stats
}

// solve dispatches to the configured solver and extracts the path to goal.
func solve(cfg *Config, g *core.Digraph[string], from, to string, kind minpq.Kind, m *metrics.SolverMetrics) ([]string, finished, error) {
	switch cfg.Solver {
	case SolverAStar:
		opts := []astar.Option[string]{astar.WithQueue[string](kind), astar.WithMetrics[string](m)}
		if cfg.EarlyExit {
			opts = append(opts, astar.WithEarlyExit[string]())
		}
		s, err := astar.New[string](g, from, to, opts...)
		if err != nil {
			return nil, nil, err
		}
		path, err := s.Solution()
		return path, s, err
	case SolverDAG:
		s, err := dag.New[string](g, from, dag.WithMetrics(m))
		if err != nil {
			return nil, nil, err
		}
		path, err := s.Solution(to)
		return path, s, err
	default:
		s, err := dijkstra.New[string](g, from, dijkstra.WithQueue[string](kind), dijkstra.WithMetrics[string](m))
		if err != nil {
			return nil, nil, err
		}
		path, err := s.Solution(to)
		return path, s, err
	}
}

// writeMetrics prints every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, f := range families {
		if _, err = expfmt.MetricFamilyToText(w, f); err != nil {
			return err
		}
	}

	return nil
}
