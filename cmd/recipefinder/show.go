package cmd

import (
	"fmt"
	"strconv"

	"github.com/rbarros/recipefinder/pkg/app/styles"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [recipe-id]",
	Short: "Show a recipe's details and instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		recipeID, err := strconv.Atoi(args[0])
		if err != nil {
			cobra.CheckErr(fmt.Errorf("invalid recipe id %q", args[0]))
		}

		ctrl, err := buildController()
		if err != nil {
			cobra.CheckErr(err)
		}

		overview, err := ctrl.Overview(recipeID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to fetch recipe %d: %w", recipeID, err))
		}

		details := overview.Details
		fmt.Println(styles.TitleStyle.Render(details.Title))
		fmt.Printf("🕒 %d minutes   👥 Serves %d\n", details.ReadyInMinutes, details.Servings)
		if details.SourceURL != "" {
			fmt.Println(styles.MutedStyle.Render(details.SourceURL))
		}

		fmt.Println()
		fmt.Println(styles.SubtitleStyle.Render("Ingredients"))
		for _, line := range details.Ingredients {
			fmt.Printf("  • %s\n", line)
		}

		fmt.Println()
		fmt.Println(styles.SubtitleStyle.Render("Instructions"))
		steps := overview.Steps()
		if len(steps) == 0 {
			fmt.Println(styles.MutedStyle.Render("  No instructions available"))
			return
		}
		for i, step := range steps {
			fmt.Printf("  %d. %s\n", i+1, step.Text)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
