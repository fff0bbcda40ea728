package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/pkg/ui"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:     "rm [id or query]",
	Short:   "Remove an asset and its content from the library",
	Aliases: []string{"remove", "delete"},
	Long: `Remove an asset record together with its content and thumbnail.

With no argument, opens an interactive picker.

Examples:
  cura rm 4f1c2a9e
  cura rm rock
  cura rm --force 4f1c2a9e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRm,
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
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

	if !rmForce {
		fmt.Printf("Delete %s and its content? [y/N] ", ui.FormatBold(asset.Name))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println(ui.FormatInfo("Cancelled"))
			return nil
		}
	}

	if err := manager.RemoveAsset(asset.ID); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Removed " + asset.Name))
	return nil
}
