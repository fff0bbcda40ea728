package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var categoryCmd = &cobra.Command{
	Use:     "category [command]",
	Short:   "Manage the category taxonomy",
	Aliases: []string{"cat"},
	Long:    `List, create, or delete categories. The default category always exists and cannot be deleted.`,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with member counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println()
		for _, c := range manager.Categories() {
			count := len(manager.FilterByCategory(c))
			label := c
			if c == manager.DefaultCategory() {
				label += ui.FormatMuted(" (default)")
			}
			fmt.Printf("  %s %s\n", ui.StyleBold.Render(label), ui.FormatMuted(fmt.Sprintf("%d asset(s)", count)))
		}
		fmt.Println()
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:     "add <name>",
	Short:   "Create a category",
	Example: `  cura category add Materials`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager.AddCategory(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Created category " + args[0]))
		return nil
	},
}

var categoryRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Short:   "Delete a category, moving its assets to the default",
	Aliases: []string{"remove"},
	Example: `  cura category rm Materials`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moved := len(manager.FilterByCategory(args[0]))
		if err := manager.RemoveCategory(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.FormatSuccess("Deleted category " + args[0]))
		if moved > 0 {
			fmt.Println(ui.FormatInfo(fmt.Sprintf("%d asset(s) moved to %s", moved, manager.DefaultCategory())))
		}
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}
