package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/config"
	"github.com/cura-cli/cura/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	RunE:  runConfigShow,
}

var configSetLibraryCmd = &cobra.Command{
	Use:   "set-library <path>",
	Short: "Move the configured library root",
	Long: `Point cura at a different library root.

The change is rejected while assets are still recorded under the current
root: content is never migrated implicitly.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigSetLibrary,
}

func init() {
	configCmd.AddCommand(configSetLibraryCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	fmt.Println()
	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Printf("  %s %s\n", ui.FormatBold("config file:"), appConfigPath)
	fmt.Printf("  %s %s\n", ui.FormatBold("library:"), appConfig.AssetLibraryPath)
	fmt.Printf("  %s %s\n", ui.FormatBold("default category:"), appConfig.DefaultCategory)
	fmt.Printf("  %s %v\n", ui.FormatBold("auto thumbnails:"), appConfig.AutoGenerateThumbnail)
	fmt.Printf("  %s %dx%d\n", ui.FormatBold("thumbnail size:"), appConfig.ThumbnailSize[0], appConfig.ThumbnailSize[1])
	fmt.Println()
	return nil
}

func runConfigSetLibrary(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	if err := manager.SetLibraryPath(path); err != nil {
		return err
	}

	appConfig.AssetLibraryPath = path
	if err := config.Save(appConfigPath, appConfig); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Library root set to " + path))
	return nil
}
