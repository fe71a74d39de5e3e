package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used to draw a table.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Title     lipgloss.Style
	Detail    lipgloss.Style
	Accessory lipgloss.Style
	Value     lipgloss.Style
	ToggleOn  lipgloss.Style
	ToggleOff lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Index     lipgloss.Style
	Empty     lipgloss.Style
	Rule      lipgloss.Style
}

// NewStyles builds the styles for a palette.
func NewStyles(p *ColorPalette) *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Footer: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),
		Title: lipgloss.NewStyle().
			Foreground(p.Text),
		Detail: lipgloss.NewStyle().
			Foreground(p.Muted),
		Accessory: lipgloss.NewStyle().
			Foreground(p.Warning),
		Value: lipgloss.NewStyle().
			Foreground(p.Secondary),
		ToggleOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),
		ToggleOff: lipgloss.NewStyle().
			Foreground(p.Muted),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Selected: lipgloss.NewStyle().
			Background(p.Surface),
		Index: lipgloss.NewStyle().
			Foreground(p.Muted),
		Empty: lipgloss.NewStyle().
			Italic(true).
			Foreground(p.Muted),
		Rule: lipgloss.NewStyle().
			Foreground(p.Border),
	}
}

// StylesFor returns the styles of a named theme.
func StylesFor(name ThemeName) *Styles {
	return NewStyles(GetPalette(name))
}
