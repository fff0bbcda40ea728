package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var (
	addName        string
	addCategory    string
	addDescription string
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add <source-path>",
	Short: "Import a file or folder into the library",
	Long: `Copy a file or folder into the managed library and catalogue it.

The content is copied, never moved; the original stays untouched. A preview
thumbnail is generated when possible.

Examples:
  cura add ~/Downloads/rock.png
  cura add ~/Textures --name "Stone Textures" --category Materials
  cura add model.fbx --tags "lowpoly,props" --description "Crate model"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Display name (defaults to the source name)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (defaults to the default category)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Free-text description")
	addCmd.Flags().StringSliceVarP(&addTags, "tags", "t", nil, "Comma-separated tags")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	asset, err := manager.AddAsset(getContext(), domain.AddRequest{
		SourcePath:  args[0],
		Name:        addName,
		Category:    addCategory,
		Description: addDescription,
		Tags:        addTags,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Imported %s (%s)", asset.Name, humanSize(asset.SizeBytes))))
	fmt.Println(ui.FormatMuted("  id:       " + asset.ID))
	fmt.Println(ui.FormatMuted("  category: " + asset.Category))
	fmt.Println(ui.FormatMuted("  path:     " + asset.LibraryPath))
	if asset.ThumbnailPath == "" {
		fmt.Println(ui.FormatWarning("No thumbnail could be generated"))
	}
	return nil
}
