package styles

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one of the two color schemes.
type Theme struct {
	Name string

	Title     lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Section   lipgloss.Style
	Body      lipgloss.Style
	Pending   lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	CardDesc  lipgloss.Style
	CardMeta  lipgloss.Style
	Tag       lipgloss.Style
	TagActive lipgloss.Style
	NoResults lipgloss.Style
	Menu      lipgloss.Style
	MenuItem  lipgloss.Style
	MenuCur   lipgloss.Style
}

// DarkTheme returns the styles for dark terminals.
func DarkTheme() Theme {
	return Theme{
		Name:      "dark",
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		CardDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TagActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2),
		Menu:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 2),
		MenuItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuCur:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
	}
}

// LightTheme returns the styles for light terminals.
func LightTheme() Theme {
	return Theme{
		Name:      "light",
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Body:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		CardDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		CardMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Tag:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TagActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")),
		NoResults: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true).Padding(1, 2),
		Menu:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("25")).Padding(0, 2),
		MenuItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		MenuCur:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("161")),
	}
}

// ThemeFor maps a persisted theme name to its style set.
func ThemeFor(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
