package cmd

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/debloat/internal/config"
	"github.com/lakshaymaurya-felt/debloat/internal/logging"
	"github.com/lakshaymaurya-felt/debloat/internal/runner"
	"github.com/lakshaymaurya-felt/debloat/internal/selector"
)

var (
	// Global flags
	debug      bool
	shellFlag  string
	scriptFlag string

	// Resolved in PersistentPreRun
	cfg    config.Config
	logger zerolog.Logger

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "debloat",
	Short: "Pick and run Windows 11 debloat actions",
	Long: `Win11 Debloater - pick maintenance actions and run them.

Tick the actions you want and the debloat PowerShell script is invoked
with the matching flags. Preview mode (-WhatIf) is on by default.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.Configure(logging.Options{Debug: debug, Out: cmd.ErrOrStderr()})
		cfg = config.Load(shellFlag, scriptFlag)
		logger.Debug().Str("shell", cfg.Shell).Str("script", cfg.Script).Msg("config loaded")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// When invoked without subcommand, show the interactive selector
		return runInteractive(cmd)
	},
}

// ExecuteContext runs the root command; ctx is cancelled on Ctrl+C.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&shellFlag, "shell", "", "PowerShell executable (env "+config.EnvShell+")")
	rootCmd.PersistentFlags().StringVar(&scriptFlag, "script", "", "Path to the debloat script (env "+config.EnvScript+")")

	// Register all subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInteractive launches the full-screen action selector, or prints the
// catalog when stdout is not a terminal.
func runInteractive(cmd *cobra.Command) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		selector.PrintStatic(cmd.OutOrStdout(), cfg.Invocation())
		return nil
	}

	// The TUI owns the terminal; logs would corrupt the display.
	quiet := logging.Discard()
	r := runner.New(quiet)
	r.LookPath = config.LookPath
	exec := selector.ExecProcess(r, cfg.Script)
	model := selector.New(cfg.Invocation(), exec, quiet)
	// Ctrl+C is a key while the TUI runs and belongs to the script while it
	// owns the terminal, so the program ignores the signal context.
	return selector.Run(context.WithoutCancel(cmd.Context()), model, cmd.InOrStdin(), cmd.OutOrStdout())
}
