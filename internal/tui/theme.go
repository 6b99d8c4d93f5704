package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/classware/gradeflow/internal/model"
	"github.com/classware/gradeflow/internal/prefs"
)

// Theme defines the visual style for the viewer.
type Theme struct {
	ID string

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Selected lipgloss.Style

	PassChip lipgloss.Style
	FailChip lipgloss.Style

	ToneHigh   lipgloss.Style
	ToneMedium lipgloss.Style
	ToneLow    lipgloss.Style

	Box       lipgloss.Style
	Sidebar   lipgloss.Style
	HelpBar   lipgloss.Style
	ErrorText lipgloss.Style
}

// Dark is the default theme.
var Dark = Theme{
	ID: prefs.ThemeDark,

	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5AB0FF")),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#A3A3A3")),
	Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#737373")),
	Bold:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
	Selected: lipgloss.NewStyle().Bold(true).
		Background(lipgloss.Color("#2563EB")).
		Foreground(lipgloss.Color("#FAFAFA")),

	PassChip: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	FailChip: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),

	ToneHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	ToneMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	ToneLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	HelpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#737373")),
	ErrorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
}

// Light mirrors Dark with colors chosen for light terminals.
var Light = Theme{
	ID: prefs.ThemeLight,

	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#525252")),
	Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#171717")),
	Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	Bold:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#171717")),
	Selected: lipgloss.NewStyle().Bold(true).
		Background(lipgloss.Color("#2563EB")).
		Foreground(lipgloss.Color("#FFFFFF")),

	PassChip: lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
	FailChip: lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")),

	ToneHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
	ToneMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309")),
	ToneLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B91C1C")),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#D4D4D4")).
		Padding(0, 1),
	Sidebar: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color("#D4D4D4")).
		Padding(0, 1),
	HelpBar:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A")),
	ErrorText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C")),
}

// ThemeFor resolves a persisted theme preference. The "system" preference
// resolves to Dark: there is no reliable scheme query for every terminal,
// and dark is the documented fallback.
func ThemeFor(pref string) Theme {
	if pref == prefs.ThemeLight {
		return Light
	}
	return Dark
}

// NextTheme cycles system → light → dark.
func NextTheme(id string) string {
	switch id {
	case prefs.ThemeSystem:
		return prefs.ThemeLight
	case prefs.ThemeLight:
		return prefs.ThemeDark
	default:
		return prefs.ThemeSystem
	}
}

// ToneStyle maps an assignment tone bucket to the theme's style for it.
func (t Theme) ToneStyle(tone model.Tone) lipgloss.Style {
	switch tone {
	case model.ToneHigh:
		return t.ToneHigh
	case model.ToneMedium:
		return t.ToneMedium
	case model.ToneLow:
		return t.ToneLow
	default:
		return t.Muted
	}
}
