package commands

import (
	"fmt"

	"folio/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Variables to hold flag values
	serverURL    string
	projectsPath string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage folio configuration",
	Long:  "View and update folio configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Println("Current configuration:")
			fmt.Printf("Server URL: %s\n", globalConfig.ServerURL)
			if globalConfig.ProjectsPath != "" {
				fmt.Printf("Projects file: %s\n", globalConfig.ProjectsPath)
			}
			if globalConfig.Theme != "" {
				fmt.Printf("Theme: %s\n", globalConfig.Theme)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "server-url":
			fmt.Println(globalConfig.ServerURL)
		case "projects-path":
			fmt.Println(globalConfig.ProjectsPath)
		case "theme":
			fmt.Println(globalConfig.Theme)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like the portfolio site URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Update configuration based on provided flags
		configUpdated := false

		if serverURL != "" {
			oldURL := globalConfig.ServerURL
			globalConfig.ServerURL = serverURL
			fmt.Printf("Server URL updated: %s -> %s\n", oldURL, serverURL)
			configUpdated = true
		}

		if projectsPath != "" {
			globalConfig.ProjectsPath = projectsPath
			fmt.Printf("Projects file set to %s\n", projectsPath)
			configUpdated = true
		}

		// Save configuration if it was updated
		if configUpdated {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
			if err := globalConfig.Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			fmt.Println("Configuration updated successfully.")
		} else {
			fmt.Println("No changes were made to the configuration.")
		}

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	configSetCmd.Flags().StringVar(&serverURL, "server-url", "", "Set portfolio site URL")
	configSetCmd.Flags().StringVar(&projectsPath, "projects-path", "", "Set local project data file")
}
