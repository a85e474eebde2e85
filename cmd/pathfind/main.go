// Command pathfind computes shortest paths over graphs described in YAML.
//
//	pathfind route --graph city.yaml --from A --to D --solver astar
//	pathfind queues
//
// Every flag can also be set through a PATHFIND_* environment variable or a
// .env file in the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/minpq"
)

func main() {
	cfg, err := LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := newRootCommand(&cfg, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(cfg *Config, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pathfind",
		Short:         "Shortest paths over YAML graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log encoding: json or console")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level")

	cmd.AddCommand(
		newRouteCommand(cfg),
		newQueuesCommand(),
	)

	return cmd
}

func newQueuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "queues",
		Short: "List the priority queue implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range minpq.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}
