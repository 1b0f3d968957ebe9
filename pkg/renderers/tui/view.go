package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-navfilter/pkg/panel"
)

// Theme holds the styles used by FormatView.
type Theme struct {
	Title   lipgloss.Style
	Summary lipgloss.Style
	Heading lipgloss.Style
	Checked lipgloss.Style
	Row     lipgloss.Style
	Faint   lipgloss.Style
	Error   lipgloss.Style
}

// DefaultTheme returns the colored terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa")),
		Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")),
		Checked: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
		Row:     lipgloss.NewStyle().Foreground(lipgloss.Color("#bac2de")),
		Faint:   lipgloss.NewStyle().Faint(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	}
}

// PlainTheme returns unstyled output.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:   plain,
		Summary: plain,
		Heading: plain,
		Checked: plain,
		Row:     plain,
		Faint:   plain,
		Error:   plain,
	}
}

// FormatView draws v as a block of text: title and summary, the query line,
// the checked selection rows and then the unchecked choices.
func FormatView(v panel.View, theme Theme) string {
	var b strings.Builder

	title := v.Filter
	if title == "" {
		title = "filter"
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString(" ")
	b.WriteString(theme.Summary.Render("(" + v.Summary + ")"))
	b.WriteString("\n")

	query := v.Query
	if query == "" {
		query = "-"
	}
	b.WriteString(theme.Faint.Render(fmt.Sprintf("query: %s [%s]", query, v.State)))
	b.WriteString("\n")

	if v.Err != nil {
		b.WriteString(theme.Error.Render("error: " + v.Err.Error()))
		b.WriteString("\n")
	}

	if len(v.Selection) > 0 {
		b.WriteString(theme.Heading.Render("selected"))
		b.WriteString("\n")
		for _, row := range v.Selection {
			b.WriteString(theme.Checked.Render(checkbox(row)))
			b.WriteString("\n")
		}
	}

	b.WriteString(theme.Heading.Render("choices"))
	b.WriteString("\n")
	if len(v.Choices) == 0 {
		b.WriteString(theme.Faint.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, row := range v.Choices {
		b.WriteString(theme.Row.Render(checkbox(row)))
		b.WriteString("\n")
	}
	if v.HasMore {
		b.WriteString(theme.Faint.Render("  ..."))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func checkbox(row panel.Row) string {
	mark := "[ ]"
	if row.Checked {
		mark = "[x]"
	}
	return fmt.Sprintf("  %s %s", mark, row.Text)
}
