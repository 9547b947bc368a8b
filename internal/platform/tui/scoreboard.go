package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-racer/internal/storage"
)

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	scoreBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// RenderScoreTable formats stored best scores for printing.
func RenderScoreTable(title string, entries []storage.Entry) string {
	heading := scoreTitleStyle.Render(fmt.Sprintf("HIGH SCORES - %s", title))

	if len(entries) == 0 {
		return heading + "\n" + scoreEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	columns := []table.Column{
		{Title: "Game", Width: 10},
		{Title: "Best", Width: 8},
		{Title: "Updated", Width: 18},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows[i] = table.Row{e.GameID, fmt.Sprintf("%d", e.Score), updated}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Not interactive, so nothing is highlighted
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return heading + "\n" + scoreBoxStyle.Render(t.View())
}
