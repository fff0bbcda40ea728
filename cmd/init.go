package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/pkg/config"
	"github.com/cura-cli/cura/pkg/library"
	"github.com/cura-cli/cura/pkg/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create the asset library and configuration",
	Long: `Create the managed library directory structure and record its
location in the config file.

Examples:
  cura init ~/Assets
  cura init /data/library`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	lib := library.New(root)
	if err := lib.Initialize(); err != nil {
		return fmt.Errorf("failed to create library: %w", err)
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg.AssetLibraryPath = root
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Println(ui.FormatSuccess("Library created at " + root))
	fmt.Println(ui.FormatMuted("Config: " + cfgPath))
	return nil
}
