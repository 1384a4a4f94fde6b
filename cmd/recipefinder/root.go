package cmd

import (
	"os"

	"github.com/rbarros/recipefinder/pkg/app"
	"github.com/rbarros/recipefinder/pkg/config"
	"github.com/rbarros/recipefinder/pkg/data"
	"github.com/rbarros/recipefinder/pkg/services"
	"github.com/rbarros/recipefinder/pkg/spoonacular"
	"github.com/spf13/cobra"
)

var (
	apiKeyFlag  string
	baseURLFlag string
)

var rootCmd = &cobra.Command{
	Use:   "recipefinder",
	Short: "Find recipes by the ingredients you have on hand",
	Long:  "Search Spoonacular by ingredient list, view recipe details and keep a local favorites collection",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		ctrl, err := buildController()
		if err != nil {
			cobra.CheckErr(err)
		}
		a := app.NewApp(ctrl)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

// buildController wires config file, flags, API client and favorites store.
func buildController() (*services.Controller, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if baseURLFlag != "" {
		cfg.BaseURL = baseURLFlag
	}

	client := spoonacular.NewClient(spoonacular.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
	})
	favorites := data.OpenFavorites()
	return services.NewController(client, favorites, cfg.Results), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Spoonacular API key (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&baseURLFlag, "base-url", "", "API base URL (overrides config file)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
