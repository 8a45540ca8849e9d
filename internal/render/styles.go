// Package render draws DivinePL output: the liturgical console display and
// the JSON/Markdown confession reports.
package render

import "github.com/charmbracelet/lipgloss"

// Liturgical color palette
var (
	ColorSuccess    = lipgloss.Color("10") // bright green
	ColorWarn       = lipgloss.Color("11") // bright yellow
	ColorMortal     = lipgloss.Color("9")  // bright red
	ColorVenial     = lipgloss.Color("3")  // yellow
	ColorRevelation = lipgloss.Color("14") // bright cyan
	ColorProphecy   = lipgloss.Color("13") // bright magenta
	ColorPrayer     = lipgloss.Color("12") // bright blue
	ColorInsight    = lipgloss.Color("4")  // blue
)

// Styles holds the lipgloss rendering styles for every semantic output role
type Styles struct {
	Success    lipgloss.Style
	Warn       lipgloss.Style
	Mortal     lipgloss.Style
	Venial     lipgloss.Style
	Revelation lipgloss.Style
	Miracle    lipgloss.Style
	Prophecy   lipgloss.Style
	Prayer     lipgloss.Style
	Insight    lipgloss.Style
	Heading    lipgloss.Style
	Plain      lipgloss.Style
}

// NewStyles creates the style set. When color is false all styles are
// pass-through so output stays plain text.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Success:    plain,
			Warn:       plain,
			Mortal:     plain,
			Venial:     plain,
			Revelation: plain,
			Miracle:    plain,
			Prophecy:   plain,
			Prayer:     plain,
			Insight:    plain,
			Heading:    plain,
			Plain:      plain,
		}
	}

	return Styles{
		Success:    lipgloss.NewStyle().Foreground(ColorSuccess),
		Warn:       lipgloss.NewStyle().Foreground(ColorWarn),
		Mortal:     lipgloss.NewStyle().Foreground(ColorMortal),
		Venial:     lipgloss.NewStyle().Foreground(ColorVenial),
		Revelation: lipgloss.NewStyle().Foreground(ColorRevelation),
		Miracle:    lipgloss.NewStyle().Foreground(ColorWarn),
		Prophecy:   lipgloss.NewStyle().Foreground(ColorProphecy),
		Prayer:     lipgloss.NewStyle().Foreground(ColorPrayer).Italic(true),
		Insight:    lipgloss.NewStyle().Foreground(ColorInsight).Italic(true),
		Heading:    lipgloss.NewStyle().Foreground(ColorPrayer).Underline(true),
		Plain:      lipgloss.NewStyle(),
	}
}
