package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [ingredients...]",
	Short: "Search recipes by ingredients",
	Long:  "Search Spoonacular for recipes matching your ingredient list and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ingredients := strings.Join(args, ", ")
		ctrl, err := buildController()
		if err != nil {
			cobra.CheckErr(err)
		}

		results, err := ctrl.Search(ingredients)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(results) == 0 {
			fmt.Println("No recipes found.")
			return
		}

		var (
			blue = lipgloss.Color("33")

			headerStyle = lipgloss.NewStyle().Foreground(blue).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(blue)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Available", "Missing", "ID")

		for i, recipe := range results {
			t.Row(
				fmt.Sprintf("%d", i+1),
				truncateString(recipe.Title, 40),
				truncateString(strings.Join(recipe.UsedIngredients, ", "), 30),
				truncateString(strings.Join(recipe.MissedIngredients, ", "), 30),
				fmt.Sprintf("%d", recipe.ID),
			)
		}

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
