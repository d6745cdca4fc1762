package ui

import "github.com/charmbracelet/lipgloss"

// DialogKind selects the accent colour and icon of a dialog.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
	DialogError
)

// Dialog is a modal message box drawn over the selector.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
}

func (k DialogKind) accent() (lipgloss.TerminalColor, string) {
	switch k {
	case DialogWarning:
		return ColorWarning, IconWarning
	case DialogError:
		return ColorError, IconError
	default:
		return ColorSuccess, IconSuccess
	}
}

// Render draws the dialog box at the given maximum width.
func (d Dialog) Render(width int) string {
	if width < 30 {
		width = 30
	}
	boxWidth := width - 8
	if boxWidth > 64 {
		boxWidth = 64
	}

	color, icon := d.Kind.accent()
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(color).
		Render(icon + " " + d.Title)

	body := lipgloss.NewStyle().
		Foreground(ColorText).
		Width(boxWidth - 4).
		Render(d.Message)

	hint := HintBarStyle().Render("Enter/Esc dismiss")

	inner := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(boxWidth).
		Render(inner)
}
