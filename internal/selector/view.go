package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/ui"
)

const tipText = "Tip: Run as Administrator. Revert/restore options run alone and skip other actions."

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}
	w := m.width
	if w < 40 {
		w = 40
	}

	var s strings.Builder
	s.WriteString(m.renderHeader(w))
	s.WriteString("\n")

	if m.dialog != nil {
		s.WriteString("\n")
		s.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, m.dialog.Render(w)))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString(m.renderList(w))
	s.WriteString("\n")
	s.WriteString(m.renderFooter(w))
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader(w int) string {
	title := ui.TitleStyle().Render("  " + ui.IconDiamond + " Win11 Debloater")
	sub := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render("  Select actions to run")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPrimary).
		Width(w - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, sub))
}

// ─── Body (checkbox list) ────────────────────────────────────────────────────

func (m Model) renderList(w int) string {
	var lines []string
	for i, a := range m.items {
		lines = append(lines, m.renderRow(i, a))
	}

	lines = append(lines, lipgloss.NewStyle().
		Foreground(ui.ColorMuted).
		Render("  "+strings.Repeat("─", w-6)))
	lines = append(lines, m.renderCheckbox(len(m.items), m.preview, "Preview actions with "+actions.PreviewFlag, ui.ColorText))

	tip := lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Italic(true).
		Width(w - 4).
		Render(tipText)
	lines = append(lines, "", "  "+strings.ReplaceAll(tip, "\n", "\n  "))

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int, a actions.Action) string {
	color := ui.ColorText
	if a.Exclusive {
		color = ui.ColorCoral
	}
	row := m.renderCheckbox(i, m.sel.IsSet(a.Key), a.Label, color)

	keyStr := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(a.Flag())
	row += "  " + keyStr
	if a.Exclusive {
		row += "  " + ui.TagMutedStyle().Render(ui.IconLock+" runs alone")
	}
	return row
}

func (m Model) renderCheckbox(i int, checked bool, label string, color lipgloss.TerminalColor) string {
	box := ui.IconUnchecked
	boxColor := ui.ColorMuted
	if checked {
		box = ui.IconChecked
		boxColor = ui.ColorSuccess
	}
	boxStr := lipgloss.NewStyle().Foreground(boxColor).Bold(checked).Render(box)
	labelStr := lipgloss.NewStyle().Foreground(color).Render(label)

	cursor := "  "
	if i == m.cursor {
		cursor = " " + lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true).Render(ui.IconBlock)
	}
	return fmt.Sprintf("%s %s %s", cursor, boxStr, labelStr)
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter(w int) string {
	var parts []string

	cmdLine := strings.Join(m.Command(), " ")
	maxLen := w - 6
	if runes := []rune(cmdLine); len(runes) > maxLen && maxLen > 1 {
		cmdLine = string(runes[:maxLen-1]) + "…"
	}
	parts = append(parts, lipgloss.NewStyle().
		Foreground(ui.ColorTextDim).
		Render("  "+ui.IconChevron+" "+cmdLine))

	var counts []string
	if n := len(m.sel.Selected()); n > 0 {
		counts = append(counts, lipgloss.NewStyle().
			Foreground(ui.ColorSuccess).
			Render(fmt.Sprintf("%d action(s) selected", n)))
	}
	if m.runs > 0 {
		counts = append(counts, lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Render(fmt.Sprintf("%d run(s) this session", m.runs)))
	}
	if len(counts) > 0 {
		sep := lipgloss.NewStyle().Foreground(ui.ColorMuted).Render(" " + ui.IconBullet + " ")
		parts = append(parts, "  "+strings.Join(counts, sep))
	}
	if actions.Validate(m.sel) == actions.NoticeSelectionAdjusted {
		parts = append(parts, "  "+ui.TagWarningStyle().Render(" revert/restore runs alone "))
	}

	parts = append(parts, "  "+m.help.View(m.keys))
	return strings.Join(parts, "\n")
}
