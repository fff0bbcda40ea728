package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var (
	updateName        string
	updateCategory    string
	updateDescription string
	updateTags        []string
)

var updateCmd = &cobra.Command{
	Use:   "update <id or query>",
	Short: "Edit an asset's metadata",
	Long: `Change an asset's name, category, description, or tags. Only the
flags you pass are applied; everything else is left as it is.

Examples:
  cura update 4f1c2a9e --name "Mossy Rock"
  cura update rock --category Materials --tags "stone,moss"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "New display name")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringSliceVarP(&updateTags, "tags", "t", nil, "Replacement tag set")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	asset, err := resolveAsset(args[0])
	if err != nil {
		return err
	}

	// Only flags the user actually set become part of the patch, so an
	// empty --description can still clear the field.
	var patch domain.UpdatePatch
	if cmd.Flags().Changed("name") {
		patch.Name = &updateName
	}
	if cmd.Flags().Changed("category") {
		patch.Category = &updateCategory
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}
	if cmd.Flags().Changed("tags") {
		patch.Tags = &updateTags
	}

	if patch.IsZero() {
		fmt.Println(ui.FormatWarning("Nothing to change; pass at least one flag"))
		return nil
	}

	updated, err := manager.UpdateAsset(asset.ID, patch)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Updated " + updated.Name))
	return nil
}
