package selector

import (
	"fmt"
	"io"
	"strings"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
)

// PrintStatic prints the action catalog as plain text. Used as a fallback
// when stdout is not a terminal and the interactive bubbletea TUI cannot
// render.
func PrintStatic(w io.Writer, inv actions.Invocation) {
	fmt.Fprintln(w, "  Win11 Debloater - available actions")
	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))

	for _, a := range actions.Catalog() {
		marker := ""
		if a.Exclusive {
			marker = "  (runs alone)"
		}
		fmt.Fprintf(w, "  --%-24s %s%s\n", a.CLIName(), a.Label, marker)
	}

	fmt.Fprintln(w, "  "+strings.Repeat("-", 58))
	fmt.Fprintf(w, "  Base command: %s\n", strings.Join(inv.BaseArgs(), " "))
	fmt.Fprintln(w, "  No terminal detected. Use 'debloat run --<action>...' to run non-interactively.")
}
