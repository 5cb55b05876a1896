package commands

import (
	"fmt"

	"folio/internal/config"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or set the theme preference",
	Long: `Without an argument, print the effective theme (the persisted preference,
or the terminal's background hint when none is stored). With "light" or
"dark", persist that preference; with "toggle", flip it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		current := globalConfig.ResolveInitialTheme()

		if len(args) == 0 {
			fmt.Println(current)
			return nil
		}

		var next string
		switch args[0] {
		case "toggle":
			flipped, err := globalConfig.ToggleTheme(current)
			if err != nil {
				return fmt.Errorf("failed to save theme preference: %w", err)
			}
			next = flipped
		case "light", "dark":
			globalConfig.Theme = args[0]
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
			if err := globalConfig.Save(path); err != nil {
				return fmt.Errorf("failed to save theme preference: %w", err)
			}
			next = args[0]
		default:
			return fmt.Errorf("unknown theme: %s (expected light, dark, or toggle)", args[0])
		}

		fmt.Printf("Theme set to %s\n", next)
		return nil
	},
}
