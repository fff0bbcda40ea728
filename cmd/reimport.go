package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/ui"
)

var reimportCmd = &cobra.Command{
	Use:   "reimport <id or query>",
	Short: "Recompute an asset's size and thumbnail from its content",
	Long: `Sizes are computed once at import time. If the content under the
library changed since, reimport refreshes the recorded size and regenerates
the thumbnail.`,
	Args: cobra.ExactArgs(1),
	RunE: runReimport,
}

func init() {
	rootCmd.AddCommand(reimportCmd)
}

func runReimport(cmd *cobra.Command, args []string) error {
	asset, err := resolveAsset(args[0])
	if err != nil {
		return err
	}

	updated, err := manager.ReimportAsset(getContext(), asset.ID)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Reimported %s (%s)", updated.Name, humanSize(updated.SizeBytes))))
	return nil
}
