package commands

import (
	"context"
	"fmt"

	"folio/internal/api"
	"folio/internal/logging"
	"folio/internal/models"
	"folio/internal/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	projectsFilter string
	projectsSearch string
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List portfolio projects",
	Long:  "Fetch the project collection and print it, optionally filtered by tag or search query.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewConsoleLogger()
		defer func() {
			_ = logger.Sync()
		}()

		client := api.NewClient(globalConfig.ServerURL)
		loader := api.NewLoader(client, globalConfig.ProjectsPath, logger)
		projects := loader.Load(context.Background())

		filtered := models.FilterProjects(projects, projectsFilter, projectsSearch)
		if len(filtered) == 0 {
			fmt.Println("No projects match.")
			return nil
		}

		titleColor := color.New(color.FgCyan, color.Bold)
		tagColor := color.New(color.FgHiBlack)
		metaColor := color.New(color.FgGreen)

		for _, p := range filtered {
			if _, err := titleColor.Println(util.Sanitize(p.Title)); err != nil {
				return err
			}
			fmt.Println("  " + util.Sanitize(p.Short))
			if _, err := tagColor.Println("  " + util.JoinTags(p.Stack)); err != nil {
				return err
			}
			if p.Repo != "" {
				if _, err := metaColor.Println("  " + util.Sanitize(p.Repo)); err != nil {
					return err
				}
			}
			fmt.Println()
		}

		fmt.Printf("%d of %d projects\n", len(filtered), len(projects))
		return nil
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectsFilter, "filter", models.AllCategories, "Category tag to filter by")
	projectsCmd.Flags().StringVar(&projectsSearch, "search", "", "Search query over title, description, and tags")
}
