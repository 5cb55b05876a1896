package commands

import (
	"fmt"

	"folio/internal/api"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio interactively",
	Long:  "Open the interactive portfolio browser: search, filter by tag, and navigate sections.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func runBrowse() error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("error resolving config directory: %w", err)
	}

	// File-backed logger: the alternate screen belongs to the TUI.
	logger := logging.NewFileLogger(dir)
	defer func() {
		_ = logger.Sync()
	}()

	client := api.NewClient(globalConfig.ServerURL)
	loader := api.NewLoader(client, globalConfig.ProjectsPath, logger)

	model := ui.NewModel(globalConfig, loader, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
