package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var openCopyPath bool

var openCmd = &cobra.Command{
	Use:   "open [id or query]",
	Short: "Open an asset with the default application",
	Long: `Open an asset's content with the system default application.

With no argument, opens an interactive picker. Use --copy to also put the
absolute path on the clipboard.

Examples:
  cura open rock
  cura open --copy 4f1c2a9e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().BoolVarP(&openCopyPath, "copy", "y", false, "Copy the absolute path to the clipboard")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	all := manager.AllAssets()
	if len(all) == 0 {
		fmt.Println(ui.FormatWarning("The library is empty"))
		return nil
	}

	var asset domain.Asset
	var err error
	if len(args) == 1 {
		asset, err = resolveAsset(args[0])
	} else {
		asset, err = pickAsset(all)
	}
	if err != nil {
		return err
	}

	path := appLibrary.Abs(asset.LibraryPath)

	if openCopyPath {
		if err := clipboard.WriteAll(path); err != nil {
			fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
		} else {
			fmt.Println(ui.FormatInfo("Path copied to clipboard"))
		}
	}

	fmt.Println(ui.FormatSuccess("Opening " + asset.Name))
	return OpenFile(path)
}
