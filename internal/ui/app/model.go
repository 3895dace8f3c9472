package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pushpal/internal/ui/components"
	"pushpal/internal/ui/theme"
	counterview "pushpal/internal/ui/views/counter"
	settingsview "pushpal/internal/ui/views/settings"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// PaletteSource hands out the palette for the current theme. Screens read it
// on every render so a theme change shows up on the next frame.
type PaletteSource interface {
	Palette() theme.Palette
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenCounter screenID = iota
	screenSettings
)

var screenLabels = map[screenID]string{
	screenCounter:  "Counter",
	screenSettings: "Settings",
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tap      key.Binding
	Reset    key.Binding
	Settings key.Binding
	Home     key.Binding
	Move     key.Binding
	Toggle   key.Binding
	Step     key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tap:      key.NewBinding(key.WithKeys(" ", "enter", "+"), key.WithHelp("space", "push-up")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset count")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Home:     key.NewBinding(key.WithKeys("esc", "h"), key.WithHelp("esc", "back to counter")),
		Move:     key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Step:     key.NewBinding(key.WithKeys("left", "right", "-", "+"), key.WithHelp("←/→", "goal ±1")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Settings, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Reset, k.Settings},
		{k.Move, k.Toggle, k.Step, k.Home},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes between the counter and
// settings screens and drives their lifecycle: the screen being left is
// paused before the one being entered is resumed, and quitting pauses the
// active screen first.
type Model struct {
	themes PaletteSource

	counterView  counterview.Model
	settingsView settingsview.Model

	active   screenID
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(counter counterview.Port, settings settingsview.Port, themes PaletteSource) Model {
	return Model{
		themes:       themes,
		counterView:  counterview.New(counter, themes),
		settingsView: settingsview.New(settings, themes),
		active:       screenCounter,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return m.counterView.Resume()
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open; lifecycle results still
	// reach their screens.
	if m.palette.Visible() && !isLifecycle(msg) {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Lifecycle results go to their own screen even if it is no longer active.
	case counterview.ResumedMsg:
		if msg.Err != nil {
			m.status = "load count: " + msg.Err.Error()
		}
		m.counterView, _ = m.counterView.Update(msg)
		return m, nil

	case counterview.PausedMsg:
		if msg.Err != nil {
			m.status = "save count: " + msg.Err.Error()
		}
		m.counterView, _ = m.counterView.Update(msg)
		return m, nil

	case settingsview.ResumedMsg:
		if msg.Err != nil {
			m.status = "load settings: " + msg.Err.Error()
		}
		m.settingsView, _ = m.settingsView.Update(msg)
		return m, nil

	case settingsview.PausedMsg:
		if msg.Err != nil {
			m.status = "save settings: " + msg.Err.Error()
		} else {
			m.status = "settings saved"
		}
		m.settingsView, _ = m.settingsView.Update(msg)
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Sequence(m.pauseActive(), tea.Quit)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case m.active == screenCounter && key.Matches(msg, m.keys.Settings):
			return m.switchTo(screenSettings)
		case m.active == screenSettings && key.Matches(msg, m.keys.Home):
			return m.switchTo(screenCounter)
		}
	}

	var cmd tea.Cmd
	switch m.active {
	case screenCounter:
		m.counterView, cmd = m.counterView.Update(msg)
	case screenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	p := m.themes.Palette()
	header := m.renderHeader(p)
	statusBar := m.renderStatusBar(p)

	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View(p))
	default:
		content = m.activeView()
	}

	return p.App.Width(m.width).Height(m.height).Render(lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar))
}

func (m Model) activeView() string {
	if m.active == screenSettings {
		return m.settingsView.View()
	}
	return m.counterView.View()
}

func (m Model) renderHeader(p theme.Palette) string {
	parts := make([]string, 0, len(screenLabels))
	for _, id := range []screenID{screenCounter, screenSettings} {
		label := " " + screenLabels[id] + " "
		if id == m.active {
			parts = append(parts, p.Hot.Render(label))
		} else {
			parts = append(parts, p.Muted.Render(label))
		}
	}
	bar := "pushpal  " + strings.Join(parts, p.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(p.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar(p theme.Palette) string {
	left := m.status
	right := p.Muted.Render("?:help  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(p.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "settings":
		if m.active == screenSettings {
			return m, nil
		}
		return m.switchTo(screenSettings)

	case "home":
		if m.active == screenCounter {
			return m, nil
		}
		return m.switchTo(screenCounter)

	case "add":
		if m.active != screenCounter {
			m.status = "add: only on the counter screen"
			return m, nil
		}
		if len(parts) < 2 {
			m.status = "usage: add <n>"
			return m, nil
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "add: not a number: " + parts[1]
			return m, nil
		}
		if n < 1 {
			m.status = "add: must be at least 1"
			return m, nil
		}
		if err := m.counterView.Add(n); err != nil {
			m.status = "add: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("added %d", n)

	case "reset":
		if m.active != screenCounter {
			m.status = "reset: only on the counter screen"
			return m, nil
		}
		m.counterView.Reset()
		m.status = "count reset"

	case "goal", "progress", "theme":
		if m.active != screenSettings {
			m.status = parts[0] + ": only on the settings screen"
			return m, nil
		}
		if len(parts) < 2 {
			m.status = "usage: " + paletteUsage[parts[0]]
			return m, nil
		}
		m.applySetting(parts[0], parts[1])

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

var paletteUsage = map[string]string{
	"goal":     "goal <0-100>",
	"progress": "progress <on|off>",
	"theme":    "theme <dark|light>",
}

func (m *Model) applySetting(name, arg string) {
	switch name {
	case "goal":
		n, err := strconv.Atoi(arg)
		if err != nil {
			m.status = "goal: not a number: " + arg
			return
		}
		m.settingsView.SetGoal(n)
		m.status = fmt.Sprintf("goal %d", m.settingsView.Draft().Goal)
	case "progress":
		on, ok := parseSwitch(arg, "on", "off")
		if !ok {
			m.status = "usage: " + paletteUsage[name]
			return
		}
		m.settingsView.SetProgressBar(on)
		m.status = "progress bar " + arg
	case "theme":
		dark, ok := parseSwitch(arg, "dark", "light")
		if !ok {
			m.status = "usage: " + paletteUsage[name]
			return
		}
		m.settingsView.SetDarkTheme(dark)
		m.status = arg + " theme"
	}
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) switchTo(next screenID) (tea.Model, tea.Cmd) {
	leaving := m.pauseActive()
	m.active = next
	m.showHelp = false
	m.status = screenLabels[next]
	var entering tea.Cmd
	switch next {
	case screenCounter:
		entering = m.counterView.Resume()
	case screenSettings:
		entering = m.settingsView.Resume()
	}
	return m, tea.Sequence(leaving, entering)
}

func (m Model) pauseActive() tea.Cmd {
	if m.active == screenSettings {
		return m.settingsView.Pause()
	}
	return m.counterView.Pause()
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.counterView, _ = m.counterView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

func isLifecycle(msg tea.Msg) bool {
	switch msg.(type) {
	case counterview.ResumedMsg, counterview.PausedMsg, settingsview.ResumedMsg, settingsview.PausedMsg:
		return true
	}
	return false
}

func parseSwitch(arg, on, off string) (bool, bool) {
	switch strings.ToLower(arg) {
	case on:
		return true, true
	case off:
		return false, true
	}
	return false, false
}
