package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app is the state shared by the commands of one invocation.
type app struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger *slog.Logger
	runID  string
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can execute commands repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "knapsack",
		Short: "Exact and heuristic 0/1 knapsack solver",
		Long: `knapsack solves 0/1 knapsack instances.

Input files use the text format "n capacity" followed by n lines
"value weight", or YAML (capacity + items). A .gz or .zst suffix is
decompressed transparently.

The solve command prints "<value> <optimal 0|1>" and the inclusion
vector; optimal is 1 only when the search finished within its budget.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	RegisterGlobalFlags(root, &a.flags)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapError(ExitUsage, "invalid flags", err)
	})

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newHeuristicCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with signal handling
func Execute(ctx context.Context, root *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return root.ExecuteContext(ctx)
}

// setup is called before any command runs: it validates global flags, loads
// the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.flags.Validate(); err != nil {
		return err
	}

	cfg, err := config.NewConfigLoader(config.NewValidator()).LoadWithDefaults(a.flags.ConfigFile)
	if err != nil {
		return WrapError(ExitUsage, "invalid configuration", err)
	}
	if a.flags.LogFormat != "" {
		cfg.Logging.Format = a.flags.LogFormat
	}
	if a.flags.Verbose {
		cfg.Logging.Level = "debug"
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return WrapError(ExitUsage, "invalid configuration", err)
	}
	a.logger, a.runID, err = logging.New(cmd.ErrOrStderr(), cfg.Logging.Format, level)
	if err != nil {
		return WrapError(ExitUsage, "invalid configuration", err)
	}
	a.logger.Debug("configuration loaded",
		slog.String("command", cmd.Name()),
		slog.String("config", a.flags.ConfigFile))

	return nil
}

// requireArgs enforces a minimum number of positional arguments with a
// usage exit code.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageErrorf("%s requires at least %d file argument(s)", cmd.Name(), n)
		}
		return nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "knapsack "+version)
		},
	}
}
