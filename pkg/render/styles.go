package render

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette. One scheme for every
// section so the report reads as a whole.
const (
	// ColorPrimary is used for section rules (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSecondary is used for section titles and the banner box (cyan).
	ColorSecondary = lipgloss.Color("51")

	// ColorSuccess is used for labels and positive indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for the banner title and cautions (orange).
	ColorWarning = lipgloss.Color("214")

	// ColorDanger is used for critical readings (red).
	ColorDanger = lipgloss.Color("196")

	// ColorInfo is used for informational accents (magenta).
	ColorInfo = lipgloss.Color("201")

	// ColorMuted is used for secondary text (gray).
	ColorMuted = lipgloss.Color("245")
)

// Text styles shared by the report sections.
var (
	// RuleStyle draws horizontal section rules.
	RuleStyle = lipgloss.NewStyle().Foreground(ColorPrimary)

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

	// BorderStyle draws the banner box.
	BorderStyle = lipgloss.NewStyle().Foreground(ColorSecondary)

	// BannerStyle is used for the banner headline.
	BannerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)

	// LabelStyle is used for key-value labels.
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	// BoldStyle emphasizes device names and commands.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// MutedStyle is used for hints and de-emphasized text.
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// SuccessStyle is used for positive status text.
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)

	// WarningStyle is used for warning text.
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarning)

	// DangerStyle is used for critical text.
	DangerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)

	// InfoStyle is used for informational text.
	InfoStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorInfo)
)

// gaugeColor picks the fill color for a usage percentage. Below half is
// healthy, the band up to 75% is a caution, everything above is critical.
func gaugeColor(percent float64) lipgloss.Color {
	switch {
	case percent < 50:
		return ColorSuccess
	case percent < 75:
		return ColorWarning
	default:
		return ColorDanger
	}
}

// tempColor picks the display color for a temperature in Celsius.
func tempColor(celsius float64) lipgloss.Color {
	switch {
	case celsius < 60:
		return ColorSuccess
	case celsius < 80:
		return ColorWarning
	default:
		return ColorDanger
	}
}
