package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/ui"
)

var listKeysOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available actions",
	Long:  "Show every action the debloat script supports, in the order flags are passed.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if listKeysOnly {
			for _, k := range actions.Keys() {
				fmt.Fprintln(out, k)
			}
			return
		}

		flagStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Width(26)
		keyStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted).Width(22)
		for _, a := range actions.Catalog() {
			line := "  " + flagStyle.Render("--"+a.CLIName()) + keyStyle.Render(a.Flag()) + a.Label
			if a.Exclusive {
				line += "  " + ui.TagMutedStyle().Render(ui.IconLock+" runs alone")
			}
			fmt.Fprintln(out, line)
		}
	},
}

func init() {
	listCmd.Flags().BoolVar(&listKeysOnly, "keys", false, "Print only the action keys")
}
