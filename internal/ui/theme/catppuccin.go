package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one fully built set of colors and styles. Screens take the
// palette from the Service on every render instead of reading globals.
type Palette struct {
	Dark bool

	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Green    lipgloss.Color
	Blue     lipgloss.Color

	App   lipgloss.Style
	Pane  lipgloss.Style
	Title lipgloss.Style
	Muted lipgloss.Style
	Hot   lipgloss.Style
	Big   lipgloss.Style
	Bar   lipgloss.Style
}

// Mocha is the dark flavour.
func Mocha() Palette {
	return build(Palette{
		Dark:     true,
		Base:     lipgloss.Color("#1e1e2e"),
		Mantle:   lipgloss.Color("#181825"),
		Surface1: lipgloss.Color("#45475a"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext0: lipgloss.Color("#a6adc8"),
		Lavender: lipgloss.Color("#b4befe"),
		Sapphire: lipgloss.Color("#74c7ec"),
		Red:      lipgloss.Color("#f38ba8"),
		Peach:    lipgloss.Color("#fab387"),
		Green:    lipgloss.Color("#a6e3a1"),
		Blue:     lipgloss.Color("#89b4fa"),
	})
}

// Latte is the light flavour.
func Latte() Palette {
	return build(Palette{
		Base:     lipgloss.Color("#eff1f5"),
		Mantle:   lipgloss.Color("#e6e9ef"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext0: lipgloss.Color("#6c6f85"),
		Lavender: lipgloss.Color("#7287fd"),
		Sapphire: lipgloss.Color("#209fb5"),
		Red:      lipgloss.Color("#d20f39"),
		Peach:    lipgloss.Color("#fe640b"),
		Green:    lipgloss.Color("#40a02b"),
		Blue:     lipgloss.Color("#1e66f5"),
	})
}

func build(p Palette) Palette {
	p.App = lipgloss.NewStyle().
		Background(p.Base).
		Foreground(p.Text)

	p.Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface1).
		Background(p.Mantle).
		Foreground(p.Text).
		Padding(1, 2)

	p.Title = lipgloss.NewStyle().Foreground(p.Sapphire).Bold(true)
	p.Muted = lipgloss.NewStyle().Foreground(p.Subtext0)
	p.Hot = lipgloss.NewStyle().Foreground(p.Peach).Bold(true)
	p.Big = lipgloss.NewStyle().Foreground(p.Lavender).Bold(true).Padding(1, 0)
	p.Bar = lipgloss.NewStyle().Background(p.Mantle).Foreground(p.Text)
	return p
}

// BandColor maps a progress band name to its fill color.
func (p Palette) BandColor(band string) lipgloss.Color {
	switch band {
	case "low":
		return p.Red
	case "mid":
		return p.Peach
	case "high":
		return p.Green
	default:
		return p.Blue
	}
}
