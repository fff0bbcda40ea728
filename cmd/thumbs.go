package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Regenerate all thumbnails",
	Long: `Rebuild the thumbnail cache for every asset. Cache paths are
derived from asset ids, so regeneration overwrites stale previews in place
and never orphans files.`,
	RunE: runThumbs,
}

func init() {
	rootCmd.AddCommand(thumbsCmd)
}

func runThumbs(cmd *cobra.Command, args []string) error {
	total := len(manager.AllAssets())
	if total == 0 {
		fmt.Println(ui.FormatWarning("The library is empty"))
		return nil
	}

	fmt.Println(ui.FormatInfo(fmt.Sprintf("Regenerating thumbnails for %d asset(s)...", total)))

	generated, err := manager.RegenerateThumbnails(getContext())
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %d of %d thumbnail(s)", generated, total)))
	if generated < total {
		fmt.Println(ui.FormatMuted("Assets without a decodable preview keep their type icon or none"))
	}
	return nil
}
