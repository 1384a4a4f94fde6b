package cmd

import (
	"fmt"

	"github.com/rbarros/recipefinder/pkg/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-path]",
	Short: "Export favorites as an EPUB cookbook",
	Long:  "Compile all favorite recipes into a single EPUB, fetching ingredients and instructions for each",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		outputPath := "cookbook.epub"
		if len(args) > 0 {
			outputPath = args[0]
		}

		ctrl, err := buildController()
		if err != nil {
			cobra.CheckErr(err)
		}

		builder := export.NewCookbookBuilder(ctrl)
		count, err := builder.WriteCookbook(outputPath)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("📖 Exported %d recipes to %s\n", count, outputPath)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
