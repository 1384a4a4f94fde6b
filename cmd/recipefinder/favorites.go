package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite recipes",
	Long:  "Display all locally stored favorite recipes in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		favorites := data.OpenFavorites()
		entries := favorites.Entries()

		if len(entries) == 0 {
			fmt.Println("⭐ No favorites yet. Use the TUI to star recipes.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 8},
			{Title: "Title", Width: 40},
			{Title: "URL", Width: 50},
		}

		rows := []table.Row{}
		for _, entry := range entries {
			record := entry.Record()
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", entry.ID),
				truncateString(record.Title, 38),
				record.DisplayURL(),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n⭐ Favorites (%d recipes)\n\n", len(entries))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
}
