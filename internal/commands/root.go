package commands

import (
	"folio/internal/config"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - A terminal portfolio browser",
	Long: `folio browses a portfolio site's project collection from the terminal.
It fetches the site's project data file once at startup and lets you search,
filter by technology tag, and jump between page sections, with a light and a
dark theme.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare "folio" opens the browser.
		return runBrowse()
	},
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

func init() {
	// Add all commands
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
}
