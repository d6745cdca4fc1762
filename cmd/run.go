package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/config"
	"github.com/lakshaymaurya-felt/debloat/internal/runner"
)

var (
	whatIf     bool
	printOnly  bool
	actionKeys []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run selected actions without the interactive picker",
	Long: `Invoke the debloat script with the given actions.

Each action has its own flag (see 'debloat list'); --action accepts the
script's parameter names instead. Preview mode is on unless --what-if=false
is passed. Revert/restore actions are meant to run alone: combining them
with other actions prints a warning and the script ignores the others.`,
	Example: `  debloat run --remove-cortana --disable-telemetry
  debloat run --action RemoveOneDrive --what-if=false
  debloat run --revert-policies --print`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := selectionFromFlags(cmd.Flags(), actionKeys)
		if err != nil {
			return err
		}

		notice := actions.Validate(sel)
		if notice.Blocking() {
			return errors.New(notice.Message())
		}
		if notice == actions.NoticeSelectionAdjusted {
			logger.Warn().Msg(notice.Message())
		}

		tokens := actions.BuildCommand(cfg.Invocation(), sel, whatIf)
		if printOnly {
			fmt.Fprintln(cmd.OutOrStdout(), quoteArgs(tokens))
			return nil
		}

		if err := runner.CheckScript(cfg.Script); err != nil {
			return explain(err)
		}
		logger.Info().Strs("argv", tokens).Msg("running script")
		r := runner.New(logger)
		r.LookPath = config.LookPath
		r.Stdin = cmd.InOrStdin()
		r.Stdout = cmd.OutOrStdout()
		r.Stderr = cmd.ErrOrStderr()
		if err := r.Run(cmd.Context(), tokens); err != nil {
			return explain(err)
		}
		logger.Info().Msg("script finished")
		return nil
	},
}

func init() {
	addActionFlags(runCmd.Flags())
	runCmd.Flags().StringSliceVar(&actionKeys, "action", nil, "Action keys to run (e.g. RemoveCortana,DisableTelemetry)")
	runCmd.Flags().BoolVar(&whatIf, "what-if", true, "Preview actions with -WhatIf")
	runCmd.Flags().BoolVar(&printOnly, "print", false, "Print the command line instead of running it")

	_ = runCmd.RegisterFlagCompletionFunc("action", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return actions.Keys(), cobra.ShellCompDirectiveNoFileComp
	})
}

// addActionFlags registers one boolean flag per catalog action.
func addActionFlags(fs *pflag.FlagSet) {
	for _, a := range actions.Catalog() {
		usage := a.Label
		if a.Exclusive {
			usage += " (runs alone)"
		}
		fs.Bool(a.CLIName(), false, usage)
	}
}

// selectionFromFlags merges the per-action flags and --action keys into a
// fully populated selection.
func selectionFromFlags(fs *pflag.FlagSet, keys []string) (actions.Selection, error) {
	sel := actions.NewSelection()
	for _, a := range actions.Catalog() {
		on, err := fs.GetBool(a.CLIName())
		if err != nil {
			return actions.NewSelection(), err
		}
		if on {
			_ = sel.Set(a.Key, true)
		}
	}
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if err := sel.Set(strings.TrimPrefix(k, "-"), true); err != nil {
			return actions.NewSelection(), fmt.Errorf("%w (valid: %s)", err, strings.Join(actions.Keys(), ", "))
		}
	}
	return sel, nil
}

// explain prefixes a runner error with its dialog title.
func explain(err error) error {
	title, _ := runner.Explain(err)
	return fmt.Errorf("%s: %w", title, err)
}

// quoteArgs joins tokens for display, quoting any that contain spaces.
func quoteArgs(tokens []string) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if strings.ContainsAny(t, " \t") {
			t = `"` + t + `"`
		}
		out[i] = t
	}
	return strings.Join(out, " ")
}
