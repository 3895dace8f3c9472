package counter

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	counterdto "pushpal/internal/modules/counter/dto"
	"pushpal/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the counter use-case.
type Port interface {
	Resume(ctx context.Context) (counterdto.CounterOutput, error)
	Pause(ctx context.Context) error
	Tap(ctx context.Context) (counterdto.CounterOutput, error)
	Add(ctx context.Context, n int) (counterdto.CounterOutput, error)
	Reset(ctx context.Context) (counterdto.CounterOutput, error)
}

type PaletteSource interface {
	Palette() theme.Palette
}

// ─── messages ────────────────────────────────────────────────────────────────

type ResumedMsg struct {
	Out counterdto.CounterOutput
	Err error
}

type PausedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    Port
	palette PaletteSource
	out     counterdto.CounterOutput
	loaded  bool
	err     error
	width   int
	height  int
}

func New(port Port, palette PaletteSource) Model {
	return Model{port: port, palette: palette}
}

// Resume reloads the count and preferences. The returned Cmd produces a ResumedMsg.
func (m Model) Resume() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Resume(context.Background())
		return ResumedMsg{Out: out, Err: err}
	}
}

// Pause saves the count. Before the count has loaded there is nothing to
// save, so the Cmd only reports a PausedMsg.
func (m Model) Pause() tea.Cmd {
	loaded := m.loaded
	return func() tea.Msg {
		if !loaded {
			return PausedMsg{}
		}
		return PausedMsg{Err: m.port.Pause(context.Background())}
	}
}

// Add counts n push-ups at once, as entered in the command palette.
func (m *Model) Add(n int) error {
	out, err := m.port.Add(context.Background(), n)
	if err != nil {
		return err
	}
	m.out = out
	return nil
}

func (m *Model) Reset() {
	out, err := m.port.Reset(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.out = out
}

func (m Model) Count() int { return m.out.Count }

func (m Model) Output() counterdto.CounterOutput { return m.out }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ResumedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.out = msg.Out
			m.loaded = true
		}

	case PausedMsg:
		m.err = msg.Err

	case tea.KeyMsg:
		if !m.loaded {
			return m, nil
		}
		// Taps only touch memory, so they run inline and keep their order.
		switch msg.String() {
		case " ", "enter", "+":
			out, err := m.port.Tap(context.Background())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.out = out
		case "r":
			m.Reset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	p := m.palette.Palette()
	if !m.loaded {
		msg := "Loading…"
		if m.err != nil {
			msg = "Error: " + m.err.Error()
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, p.Muted.Render(msg))
	}

	var sb strings.Builder
	sb.WriteString(p.Title.Render("Push-ups") + "\n")
	if m.out.Count == 0 {
		sb.WriteString(p.Big.Render(m.out.Display) + "\n")
	} else {
		sb.WriteString(p.Big.Foreground(p.Peach).Render(m.out.Display) + "\n")
	}
	if m.out.ProgressVisible {
		sb.WriteString(m.renderBar(p) + "\n")
	}
	if m.err != nil {
		sb.WriteString(p.Hot.Render("Error: "+m.err.Error()) + "\n")
	}
	sb.WriteString("\n" + p.Muted.Render("space: push-up  r: reset  s: settings"))

	pane := p.Pane.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) renderBar(p theme.Palette) string {
	width := m.width / 2
	if width < 20 {
		width = 20
	}
	bar := progress.New(
		progress.WithSolidFill(string(p.BandColor(m.out.Band))),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(p.Surface1)
	label := p.Muted.Render(fmt.Sprintf(" %d/%d", m.out.Count, m.out.Goal))
	return bar.ViewAs(m.out.Fraction) + label
}
