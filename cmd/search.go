package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search assets by name, description, or tag",
	Long: `Case-insensitive substring search across names, descriptions, and
tags. Results keep their catalogue order.

Examples:
  cura search rock
  cura search "blue"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	matches := manager.SearchAssets(args[0])
	if len(matches) == 0 {
		fmt.Println(ui.FormatWarning("No matching assets"))
		return nil
	}

	fmt.Println()
	for _, a := range matches {
		fmt.Printf("%s  %s\n", ui.FormatMuted(shortID(a.ID)), ui.StyleBold.Render(a.Name))
		if a.Description != "" {
			fmt.Printf("   %s\n", ui.FormatMuted(a.Description))
		}
		if len(a.Tags) > 0 {
			fmt.Printf("   %s\n", ui.StyleInfo.Render(strings.Join(a.Tags, ", ")))
		}
		fmt.Println()
	}
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d match(es)", len(matches))))
	return nil
}
