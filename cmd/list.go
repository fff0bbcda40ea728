package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var listCategoryFilter string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List catalogued assets",
	Aliases: []string{"ls"},
	Long: `List assets in a table, newest-import last.

Examples:
  cura list
  cura list --category Materials`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategoryFilter, "category", "c", "", "Only show assets in this category")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var assets []domain.Asset
	if listCategoryFilter != "" {
		assets = manager.FilterByCategory(listCategoryFilter)
	} else {
		assets = manager.AllAssets()
	}

	if len(assets) == 0 {
		fmt.Println(ui.FormatWarning("No assets found"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "ID"},
		{Header: "NAME", Width: 20},
		{Header: "KIND"},
		{Header: "CATEGORY", Width: 12},
		{Header: "SIZE", Right: true},
		{Header: "TAGS"},
	})

	for _, a := range assets {
		table.AddRow([]string{
			shortID(a.ID),
			a.Name,
			a.Kind.String(),
			a.Category,
			humanSize(a.SizeBytes),
			strings.Join(a.Tags, ", "),
		})
	}

	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d asset(s)", len(assets))))
	return nil
}
