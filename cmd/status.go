package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/debloat/internal/core"
	"github.com/lakshaymaurya-felt/debloat/internal/policy"
	"github.com/lakshaymaurya-felt/debloat/internal/runner"
	"github.com/lakshaymaurya-felt/debloat/internal/ui"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check prerequisites and current policy state",
	Long:  "Report the OS version, elevation, PowerShell and script availability, and which debloat policies are currently applied.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := collectStatus(cmd)
		if statusJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		printStatus(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output status as JSON")
}

// ─── Report ──────────────────────────────────────────────────────────────────

type statusReport struct {
	OS          string         `json:"os"`
	Windows11   bool           `json:"windows11"`
	Elevated    bool           `json:"elevated"`
	Shell       string         `json:"shell"`
	ShellPath   string         `json:"shellPath,omitempty"`
	Script      string         `json:"script"`
	ScriptFound bool           `json:"scriptFound"`
	Policies    []policyStatus `json:"policies,omitempty"`
	PolicyError string         `json:"policyError,omitempty"`
}

type policyStatus struct {
	Action  string `json:"action"`
	Value   string `json:"value"`
	Applied bool   `json:"applied"`
}

func collectStatus(cmd *cobra.Command) statusReport {
	report := statusReport{
		OS:        core.WindowsVersionString(),
		Windows11: core.IsWindows11OrAbove(),
		Elevated:  core.IsElevated(),
		Shell:     cfg.Shell,
		Script:    cfg.Script,
	}

	if info, err := core.CollectOSInfo(cmd.Context()); err == nil {
		report.OS = info.Name()
		if info.Build != "" {
			report.OS += " (Build " + info.Build + ")"
		}
	} else {
		logger.Debug().Err(err).Msg("host info unavailable")
	}

	if p, err := cfg.LookupShell(); err == nil {
		report.ShellPath = p
	}
	report.ScriptFound = runner.CheckScript(cfg.Script) == nil

	states, err := policy.Current()
	if err != nil {
		report.PolicyError = err.Error()
		return report
	}
	for _, s := range states {
		report.Policies = append(report.Policies, policyStatus{
			Action:  s.Action,
			Value:   s.Policy.String(),
			Applied: s.IsApplied(),
		})
	}
	return report
}

func printStatus(w io.Writer, r statusReport) {
	label := lipgloss.NewStyle().Foreground(ui.ColorTextDim).Width(16)
	ok := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	bad := lipgloss.NewStyle().Foreground(ui.ColorError)
	warn := lipgloss.NewStyle().Foreground(ui.ColorWarning)

	yesNo := func(v bool, no lipgloss.Style) string {
		if v {
			return ok.Render(ui.IconSuccess + " yes")
		}
		return no.Render(ui.IconError + " no")
	}

	fmt.Fprintln(w, ui.TitleStyle().Render("  "+ui.IconDiamond+" Win11 Debloater status"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+label.Render("OS")+r.OS)
	fmt.Fprintln(w, "  "+label.Render("Windows 11")+yesNo(r.Windows11, warn))
	fmt.Fprintln(w, "  "+label.Render("Administrator")+yesNo(r.Elevated, warn))

	shell := bad.Render(ui.IconError + " " + r.Shell + " not found")
	if r.ShellPath != "" {
		shell = ok.Render(ui.IconSuccess+" ") + r.ShellPath
	}
	fmt.Fprintln(w, "  "+label.Render("PowerShell")+shell)

	script := bad.Render(ui.IconError+" ") + r.Script + bad.Render(" (missing)")
	if r.ScriptFound {
		script = ok.Render(ui.IconSuccess+" ") + r.Script
	}
	fmt.Fprintln(w, "  "+label.Render("Script")+script)

	fmt.Fprintln(w)
	if r.PolicyError != "" {
		fmt.Fprintln(w, "  "+label.Render("Policies")+ui.TagMutedStyle().Render(r.PolicyError))
		return
	}
	fmt.Fprintln(w, "  "+label.Render("Policies"))
	for _, p := range r.Policies {
		state := ui.TagMutedStyle().Width(10).Render("not set")
		if p.Applied {
			state = ok.Width(10).Render("applied")
		}
		fmt.Fprintf(w, "    %-20s %s%s\n", p.Action, state,
			lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(p.Value))
	}
}
