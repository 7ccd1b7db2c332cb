package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for titles and the summary line.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// NoHoles, OneHole and ManyHoles color-code hole totals.
	NoHoles   lipgloss.Style
	OneHole   lipgloss.Style
	ManyHoles lipgloss.Style

	// Pass styles PASS indicators.
	Pass lipgloss.Style

	// Fail styles FAIL indicators and failed entries.
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		NoHoles:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingRight(1),
		OneHole:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")).PaddingRight(1),
		ManyHoles: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).PaddingRight(1),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// HoleStyle returns the style for a hole total.
func (s Styles) HoleStyle(n int) lipgloss.Style {
	switch {
	case n <= 0:
		return s.NoHoles
	case n == 1:
		return s.OneHole
	default:
		return s.ManyHoles
	}
}
