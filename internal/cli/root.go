// Package cli implements the mstrace command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstrace/internal/config"
	"github.com/katalvlaran/mstrace/internal/logging"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// app carries what every subcommand needs once the root has run.
type app struct {
	cfgPath  string
	logLevel string

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand builds the command tree. Output goes to cmd.OutOrStdout so
// tests can capture it.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mstrace",
		Short:         "Step-by-step traces of Kruskal's minimum spanning tree",
		Long:          `mstrace builds replayable traces of Kruskal's algorithm with union-find or depth-first cycle detection, verifies golden cases, generates fixture graphs and serves traces over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to a YAML/JSON/TOML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override: debug, info, warn, error")

	root.AddCommand(
		newTraceCommand(a),
		newVerifyCommand(a),
		newGenerateCommand(a),
		newServeCommand(a),
		newVersionCommand(),
	)

	return root
}

// init loads configuration and builds the logger.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	var log *slog.Logger
	if cfg.Log.File != "" {
		log, err = logging.New(cfg.Log)
	} else {
		log, err = logging.NewWriter(stderr, cfg.Log)
	}
	if err != nil {
		return err
	}

	a.cfg, a.log = cfg, log
	slog.SetDefault(log)

	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mstrace:", err)
		return 1
	}

	return 0
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mstrace",
		Args:  cobra.NoArgs,
		// The root pre-run loads config; version should work without one.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "mstrace version %s\n", Version)
			return err
		},
	}
}
