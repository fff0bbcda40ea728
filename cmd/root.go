package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cura-cli/cura/internal/adapters/store"
	"github.com/cura-cli/cura/internal/adapters/thumbnail"
	"github.com/cura-cli/cura/internal/core/domain"
	"github.com/cura-cli/cura/internal/core/services"
	"github.com/cura-cli/cura/pkg/config"
	"github.com/cura-cli/cura/pkg/library"
	"github.com/cura-cli/cura/pkg/ui"
)

var (
	// Global application state, wired once per invocation
	appConfig     *config.Config
	appConfigPath string
	appLibrary    *library.Library
	manager       *services.Manager
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cura",
	Short: "Cura - A local asset library manager",
	Long: ui.StyleTitle.Render("Cura") + " - Asset Library Manager\n\n" +
		"Catalogue files and folders into a managed library with categories,\n" +
		"tags, search, and cached preview thumbnails.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initializeApp loads the config and builds the manager stack
func initializeApp(cmd *cobra.Command, args []string) error {
	// init and version work without a configured library
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}
	appConfigPath = path

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	appConfig = cfg

	if cfg.AssetLibraryPath == "" {
		fmt.Println(ui.FormatError("No asset library configured"))
		fmt.Println(ui.FormatInfo("Run 'cura init <path>' to create one"))
		os.Exit(1)
	}

	appLibrary = library.New(cfg.AssetLibraryPath)
	if !appLibrary.Exists() {
		fmt.Println(ui.FormatError("Library not found at " + cfg.AssetLibraryPath))
		fmt.Println(ui.FormatInfo("Run 'cura init " + cfg.AssetLibraryPath + "' to recreate it"))
		os.Exit(1)
	}

	metaStore := store.NewJSONStore(appLibrary)
	pipeline := thumbnail.NewPipeline(appLibrary, cfg.ThumbnailSize[0], cfg.ThumbnailSize[1])

	m, err := services.NewManager(appLibrary, metaStore, pipeline, services.ManagerOptions{
		DefaultCategory: cfg.DefaultCategory,
		AutoThumbnail:   cfg.AutoGenerateThumbnail,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCorruptStore) {
			// The catalogue is recoverable: warn and continue empty.
			fmt.Println(ui.FormatWarning("Metadata store is corrupt; starting with an empty catalogue"))
			fmt.Println(ui.FormatMuted(err.Error()))
		} else {
			return err
		}
	}
	manager = m

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
