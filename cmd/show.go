package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id or query>",
	Short: "Show full details for one asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := resolveAsset(args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle(a.Name))
	fmt.Println()
	fmt.Printf("  %s %s\n", ui.FormatBold("ID:"), a.ID)
	fmt.Printf("  %s %s\n", ui.FormatBold("Kind:"), a.Kind)
	fmt.Printf("  %s %s\n", ui.FormatBold("Category:"), a.Category)
	fmt.Printf("  %s %s\n", ui.FormatBold("Size:"), humanSize(a.SizeBytes))
	fmt.Printf("  %s %s\n", ui.FormatBold("Path:"), appLibrary.Abs(a.LibraryPath))
	if a.ThumbnailPath != "" {
		fmt.Printf("  %s %s\n", ui.FormatBold("Thumbnail:"), appLibrary.Abs(a.ThumbnailPath))
	}
	if len(a.Tags) > 0 {
		fmt.Printf("  %s %s\n", ui.FormatBold("Tags:"), strings.Join(a.Tags, ", "))
	}
	fmt.Printf("  %s %s\n", ui.FormatBold("Created:"), a.CreatedAt.Format("Jan 02, 2006 15:04"))
	fmt.Printf("  %s %s\n", ui.FormatBold("Updated:"), a.UpdatedAt.Format("Jan 02, 2006 15:04"))
	if a.Description != "" {
		fmt.Println()
		fmt.Println("  " + a.Description)
	}
	fmt.Println()
	return nil
}
