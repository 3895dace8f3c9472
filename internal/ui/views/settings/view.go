package settings

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "pushpal/internal/modules/settings/dto"
	"pushpal/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type Port interface {
	Resume(ctx context.Context) (settingsdto.PreferencesOutput, error)
	Pause(ctx context.Context, progressBar, darkTheme bool, goal int) (settingsdto.PreferencesOutput, error)
	PreviewTheme(ctx context.Context, dark bool) error
	StepGoal(goal, delta int) int
}

type PaletteSource interface {
	Palette() theme.Palette
}

// ─── messages ────────────────────────────────────────────────────────────────

type ResumedMsg struct {
	Prefs settingsdto.PreferencesOutput
	Err   error
}

type PausedMsg struct {
	Prefs settingsdto.PreferencesOutput
	Err   error
}

// ─── rows ────────────────────────────────────────────────────────────────────

type row int

const (
	rowProgress row = iota
	rowTheme
	rowGoal
)

// ─── model ───────────────────────────────────────────────────────────────────

// Model edits a draft of the preferences; Pause writes the draft.
type Model struct {
	port    Port
	palette PaletteSource
	draft   settingsdto.PreferencesOutput
	cursor  row
	loaded  bool
	err     error
	width   int
	height  int
}

func New(port Port, palette PaletteSource) Model {
	return Model{port: port, palette: palette}
}

func (m Model) Resume() tea.Cmd {
	return func() tea.Msg {
		prefs, err := m.port.Resume(context.Background())
		return ResumedMsg{Prefs: prefs, Err: err}
	}
}

func (m Model) Pause() tea.Cmd {
	draft := m.draft
	loaded := m.loaded
	return func() tea.Msg {
		if !loaded {
			return PausedMsg{}
		}
		prefs, err := m.port.Pause(context.Background(), draft.ProgressBarEnabled, draft.DarkThemeEnabled, draft.Goal)
		return PausedMsg{Prefs: prefs, Err: err}
	}
}

func (m Model) Draft() settingsdto.PreferencesOutput { return m.draft }

// SetProgressBar, SetDarkTheme and SetGoal back the palette commands.
func (m *Model) SetProgressBar(on bool) {
	m.draft.ProgressBarEnabled = on
	m.clampCursor()
}

func (m *Model) SetDarkTheme(on bool) {
	m.draft.DarkThemeEnabled = on
	m.err = m.port.PreviewTheme(context.Background(), on)
}

func (m *Model) SetGoal(goal int) {
	m.draft.Goal = m.port.StepGoal(goal, 0)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ResumedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.draft = msg.Prefs
			m.loaded = true
			m.clampCursor()
		}

	case PausedMsg:
		m.err = msg.Err
		if msg.Err == nil && m.loaded {
			m.draft = msg.Prefs
		}

	case tea.KeyMsg:
		if !m.loaded {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.lastRow() {
				m.cursor++
			}
		case " ", "enter":
			m.toggle()
		case "left", "-":
			m.step(-1)
		case "right", "+", "=":
			m.step(1)
		case "pgdown":
			m.step(-10)
		case "pgup":
			m.step(10)
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.palette.Palette()
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, p.Muted.Render("Loading…"))
	}

	var sb strings.Builder
	sb.WriteString(p.Title.Render("Settings") + "\n\n")
	sb.WriteString(m.renderRow(p, rowProgress, "Progress bar", onOff(m.draft.ProgressBarEnabled)) + "\n")
	sb.WriteString(m.renderRow(p, rowTheme, "Dark theme", onOff(m.draft.DarkThemeEnabled)) + "\n")
	if m.draft.ProgressBarEnabled {
		sb.WriteString(m.renderRow(p, rowGoal, "Goal", fmt.Sprintf("◀ %3d ▶", m.draft.Goal)) + "\n")
	}
	if m.err != nil {
		sb.WriteString("\n" + p.Hot.Render("Error: "+m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + p.Muted.Render("↑/↓: move  space: toggle  ←/→: goal  esc: back"))

	pane := p.Pane.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) toggle() {
	switch m.cursor {
	case rowProgress:
		m.SetProgressBar(!m.draft.ProgressBarEnabled)
	case rowTheme:
		m.SetDarkTheme(!m.draft.DarkThemeEnabled)
	}
}

func (m *Model) step(delta int) {
	if m.cursor != rowGoal || !m.draft.ProgressBarEnabled {
		return
	}
	m.draft.Goal = m.port.StepGoal(m.draft.Goal, delta)
}

// The goal row only exists while the progress bar is enabled.
func (m Model) lastRow() row {
	if m.draft.ProgressBarEnabled {
		return rowGoal
	}
	return rowTheme
}

func (m *Model) clampCursor() {
	if m.cursor > m.lastRow() {
		m.cursor = m.lastRow()
	}
}

func (m Model) renderRow(p theme.Palette, r row, label, value string) string {
	line := fmt.Sprintf("%-14s %s", label, value)
	if r == m.cursor {
		return p.Hot.Render("› " + line)
	}
	return "  " + line
}

func onOff(v bool) string {
	if v {
		return "[on]"
	}
	return "[off]"
}
