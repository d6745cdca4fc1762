package selector

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/runner"
	"github.com/lakshaymaurya-felt/debloat/internal/ui"
)

// ─── Messages ────────────────────────────────────────────────────────────────

// scriptDoneMsg is delivered when the script exits and the TUI resumes.
type scriptDoneMsg struct {
	err error
}

// Executor turns a command line into a tea.Cmd that runs it and eventually
// yields a scriptDoneMsg.
type Executor func(tokens []string) tea.Cmd

// ExecProcess returns the production Executor: it checks the script exists,
// then suspends the TUI and hands the terminal to the script.
func ExecProcess(r *runner.Runner, script string) Executor {
	return func(tokens []string) tea.Cmd {
		if err := runner.CheckScript(script); err != nil {
			return func() tea.Msg { return scriptDoneMsg{err: err} }
		}
		cmd, err := r.Command(tokens)
		if err != nil {
			return func() tea.Msg { return scriptDoneMsg{err: err} }
		}
		r.Logger.Debug().Strs("argv", tokens).Msg("handing terminal to script")
		return tea.ExecProcess(cmd, func(err error) tea.Msg {
			return scriptDoneMsg{err: runner.Classify(err)}
		})
	}
}

// ─── Model ───────────────────────────────────────────────────────────────────

// Model is the bubbletea Model for the action picker.
type Model struct {
	items   []actions.Action
	sel     actions.Selection
	preview bool
	cursor  int // 0..len(items); len(items) is the preview row
	width   int
	height  int

	inv    actions.Invocation
	exec   Executor
	logger zerolog.Logger

	dialog   *ui.Dialog
	pending  []string // command waiting for the adjusted-selection warning to close
	running  bool
	runs     int // completed script runs this session
	quitting bool

	keys keyMap
	help help.Model
}

// New creates a selector with nothing checked and preview mode on.
func New(inv actions.Invocation, exec Executor, logger zerolog.Logger) Model {
	return Model{
		items:   actions.Catalog(),
		sel:     actions.NewSelection(),
		preview: true,
		width:   80,
		height:  24,
		inv:     inv,
		exec:    exec,
		logger:  logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Selection exposes the current checkbox state.
func (m Model) Selection() actions.Selection { return m.sel }

// Preview reports whether -WhatIf will be passed.
func (m Model) Preview() bool { return m.preview }

// Dialog returns the open dialog, if any.
func (m Model) Dialog() *ui.Dialog { return m.dialog }

// Command is the command line the current state would run.
func (m Model) Command() []string {
	return actions.BuildCommand(m.inv, m.sel, m.preview)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case scriptDoneMsg:
		m.running = false
		m.runs++
		title, text := runner.Explain(msg.err)
		kind := ui.DialogInfo
		if msg.err != nil {
			kind = ui.DialogError
			m.logger.Debug().Err(msg.err).Msg("script failed")
		} else {
			text += " See the script output above."
		}
		m.dialog = &ui.Dialog{Kind: kind, Title: title, Message: text}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		// Dialogs are modal: only dismissal keys reach them.
		if m.dialog != nil {
			if key.Matches(msg, m.keys.Dismiss) {
				m.dialog = nil
				if m.pending != nil {
					tokens := m.pending
					m.pending = nil
					return m.start(tokens)
				}
			}
			return m, nil
		}

		if m.running {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items) {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if m.cursor == len(m.items) {
				m.preview = !m.preview
			} else {
				_, _ = m.sel.Toggle(m.items[m.cursor].Key)
			}

		case key.Matches(msg, m.keys.Preview):
			m.preview = !m.preview

		case key.Matches(msg, m.keys.All):
			for _, a := range m.items {
				_ = m.sel.Set(a.Key, !a.Exclusive)
			}

		case key.Matches(msg, m.keys.None):
			m.sel.Clear()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Run):
			return m.run()
		}
		return m, nil
	}

	return m, nil
}

// View delegates to view.go renderView.
func (m Model) View() string {
	return m.renderView()
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// run validates the selection and either opens a dialog or starts the script.
// An adjusted selection still runs with every checked flag once the warning
// is dismissed.
func (m Model) run() (tea.Model, tea.Cmd) {
	notice := actions.Validate(m.sel)
	if notice.Blocking() {
		m.dialog = &ui.Dialog{Kind: ui.DialogWarning, Title: notice.Title(), Message: notice.Message()}
		return m, nil
	}

	tokens := m.Command()
	if notice == actions.NoticeSelectionAdjusted {
		m.dialog = &ui.Dialog{Kind: ui.DialogWarning, Title: notice.Title(), Message: notice.Message()}
		m.pending = tokens
		return m, nil
	}
	return m.start(tokens)
}

func (m Model) start(tokens []string) (tea.Model, tea.Cmd) {
	if m.exec == nil {
		return m, nil
	}
	m.running = true
	m.logger.Info().Strs("argv", tokens).Msg("running script")
	return m, m.exec(tokens)
}
